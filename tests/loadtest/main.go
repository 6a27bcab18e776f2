package main

import (
	"bytes"
	"fmt"
	json "github.com/goccy/go-json"
	"io"
	"math/rand/v2"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL      = "http://127.0.0.1:8080"
	tokenHeader  = "X-Session-Token"
	numWorkers   = 50
	testDuration = 10 * time.Second
)

var (
	drivers    = []string{"Max Verstappen", "Lewis Hamilton", "Lando Norris", "Charles Leclerc"}
	categories = []string{"timing", "position", "telemetry", "weather", "general"}
	prompts    = []string{"weather?", "who is fastest?", "pit window?", "gap to leader?"}
)

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

// viewer is one signed-in worker session.
type viewer struct {
	token string
	rng   *rand.Rand
}

func main() {
	fmt.Println("=== PitWall Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n\n", numWorkers, testDuration)

	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Feed polling (GET /dashboard/feed) ---")
	runPhase(testDuration, func(v *viewer) result {
		return doGetFeed(v, false)
	})

	fmt.Println("\n--- Phase 2: Mixed load (60% feed, 20% filtered feed, 10% prompt, 10% toggle) ---")
	runPhase(testDuration, func(v *viewer) result {
		r := v.rng.Float64()
		switch {
		case r < 0.60:
			return doGetFeed(v, false)
		case r < 0.80:
			return doGetFeed(v, true)
		case r < 0.90:
			return doPrompt(v)
		default:
			return doToggle(v)
		}
	})
}

func signIn(n int) (string, error) {
	body, _ := json.Marshal(map[string]string{
		"email":    fmt.Sprintf("fan%d@pitwall.test", n),
		"password": "loadtest",
	})
	resp, err := httpClient.Post(baseURL+"/auth/signin", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("signin: status %d", resp.StatusCode)
	}
	return resp.Header.Get(tokenHeader), nil
}

func runPhase(duration time.Duration, workFn func(v *viewer) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		token, err := signIn(i)
		if err != nil {
			fmt.Printf("worker %d: %s\n", i, err)
			continue
		}
		wg.Add(1)
		go func(v *viewer) {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(v)
					totalOps.Add(1)
					results <- r
				}
			}
		}(&viewer{token: token, rng: rand.New(rand.NewPCG(rand.Uint64(), uint64(i)))})
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-30s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 96))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		fmt.Printf("  %-30s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors,
			fmtDur(avgDuration(s.latencies)),
			fmtDur(percentile(s.latencies, 0.50)),
			fmtDur(percentile(s.latencies, 0.95)),
			fmtDur(percentile(s.latencies, 0.99)))
	}

	if totalOps == 0 {
		fmt.Println("  no requests completed")
		return
	}
	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + strings.Repeat("-", 96))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func do(v *viewer, endpoint, method, url string, body any, want int) result {
	var rd io.Reader = http.NoBody
	if body != nil {
		data, _ := json.Marshal(body)
		rd = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, rd)
	if err != nil {
		return result{endpoint, 0, 0, true}
	}
	req.Header.Set(tokenHeader, v.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != want}
}

func doGetFeed(v *viewer, filtered bool) result {
	if !filtered {
		return do(v, "GET /dashboard/feed", http.MethodGet, baseURL+"/dashboard/feed", nil, http.StatusOK)
	}
	url := fmt.Sprintf("%s/dashboard/feed?category=%s&limit=20", baseURL, categories[v.rng.IntN(len(categories))])
	return do(v, "GET /dashboard/feed?category", http.MethodGet, url, nil, http.StatusOK)
}

func doPrompt(v *viewer) result {
	body := map[string]string{"prompt": prompts[v.rng.IntN(len(prompts))]}
	return do(v, "POST /dashboard/prompt", http.MethodPost, baseURL+"/dashboard/prompt", body, http.StatusCreated)
}

func doToggle(v *viewer) result {
	body := map[string]string{"dimension": "drivers", "value": drivers[v.rng.IntN(len(drivers))]}
	return do(v, "POST /dashboard/filters/toggle", http.MethodPost, baseURL+"/dashboard/filters/toggle", body, http.StatusOK)
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
