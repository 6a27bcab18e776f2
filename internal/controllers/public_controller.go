package controllers

import (
	"net/http"
	"pitwall/internal/feed"
	"pitwall/internal/models"
	"pitwall/internal/structures"
)

type feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type race struct {
	Name    string `json:"name"`
	Date    string `json:"date"`
	Circuit string `json:"circuit"`
}

type faq struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type landing struct {
	App      string    `json:"app"`
	Tagline  string    `json:"tagline"`
	Intro    string    `json:"intro"`
	Features []feature `json:"features"`
	Races    []race    `json:"upcoming_races"`
	FAQ      []faq     `json:"faq"`
}

var landingContent = landing{
	Tagline: "Second Screen Experience",
	Intro:   "Enhance your Formula 1 viewing with real-time data, AI-powered insights, and interactive features that bring you closer to the action.",
	Features: []feature{
		{"Real-time Race Data", "Live timing, positions, and championship standings updated in real-time during races."},
		{"Advanced Analytics", "Deep insights into driver performance, sector times, and strategic decisions."},
		{"AI-Powered Insights", "Get intelligent analysis and predictions powered by machine learning."},
	},
	Races: []race{
		{"Bahrain Grand Prix", "2025-03-02", "Bahrain International Circuit"},
		{"Saudi Arabian Grand Prix", "2025-03-09", "Jeddah Corniche Circuit"},
		{"Australian Grand Prix", "2025-03-30", "Albert Park Circuit"},
	},
	FAQ: []faq{
		{"Can I use this during live races?", "Yes. It is meant to run alongside the broadcast and adds context as the race unfolds."},
		{"Do I need an account?", "Sign in to open the dashboard, keep favorite drivers and teams, and tune notifications."},
	},
}

type catalogResponse struct {
	Drivers    []string          `json:"drivers"`
	Teams      []string          `json:"teams"`
	Categories []models.Category `json:"categories"`
	Kinds      []models.Kind     `json:"kinds"`
}

type PublicController struct {
	conf    *structures.Config
	catalog *feed.Catalog
}

func NewPublicController(conf *structures.Config, catalog *feed.Catalog) *PublicController {
	return &PublicController{
		conf:    conf,
		catalog: catalog,
	}
}

func (pc *PublicController) Landing(w http.ResponseWriter, r *http.Request) {
	page := landingContent
	page.App = pc.conf.AppName
	writeJSON(w, http.StatusOK, page)
}

func (pc *PublicController) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalogResponse{
		Drivers:    pc.catalog.Drivers,
		Teams:      pc.catalog.Teams,
		Categories: models.Categories,
		Kinds:      models.Kinds,
	})
}
