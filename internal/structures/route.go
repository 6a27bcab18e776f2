package structures

import "net/http"

type Route struct {
	Url     string
	Methods []string
	Handler http.Handler
}
