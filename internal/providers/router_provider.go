package providers

import (
	"net/http"
	"pitwall/internal/structures"
	"strings"
)

type RouterProviderInterface interface {
	Get(url string, handler http.Handler)
	Post(url string, handler http.Handler)
	Put(url string, handler http.Handler)
	Patch(url string, handler http.Handler)
	Delete(url string, handler http.Handler)
	GetRoutes() []structures.Route
}

type methodRoute struct {
	method  string
	handler http.Handler
}

// RouterProvider collects routes before they are mounted on a ServeMux.
// A URL may be registered for several methods; it is mounted once.
type RouterProvider struct {
	order  []string
	routes map[string][]methodRoute
}

func (rp *RouterProvider) add(method, url string, handler http.Handler) {
	if _, ok := rp.routes[url]; !ok {
		rp.order = append(rp.order, url)
	}
	rp.routes[url] = append(rp.routes[url], methodRoute{method: method, handler: handler})
}

func (rp *RouterProvider) Get(url string, handler http.Handler) {
	rp.add(http.MethodGet, url, handler)
}

func (rp *RouterProvider) Post(url string, handler http.Handler) {
	rp.add(http.MethodPost, url, handler)
}

func (rp *RouterProvider) Put(url string, handler http.Handler) {
	rp.add(http.MethodPut, url, handler)
}

func (rp *RouterProvider) Patch(url string, handler http.Handler) {
	rp.add(http.MethodPatch, url, handler)
}

func (rp *RouterProvider) Delete(url string, handler http.Handler) {
	rp.add(http.MethodDelete, url, handler)
}

func (rp *RouterProvider) GetRoutes() []structures.Route {
	out := make([]structures.Route, 0, len(rp.order))
	for _, url := range rp.order {
		handlers := rp.routes[url]
		methods := make([]string, 0, len(handlers))
		for _, h := range handlers {
			methods = append(methods, h.method)
		}
		out = append(out, structures.Route{
			Url:     url,
			Methods: methods,
			Handler: methodHandler(handlers),
		})
	}
	return out
}

func NewRouterProvider() RouterProviderInterface {
	return &RouterProvider{routes: make(map[string][]methodRoute)}
}

func methodHandler(handlers []methodRoute) http.Handler {
	allowed := make([]string, 0, len(handlers))
	for _, h := range handlers {
		allowed = append(allowed, h.method)
	}
	allow := strings.Join(allowed, ", ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, h := range handlers {
			if r.Method == h.method {
				h.handler.ServeHTTP(w, r)
				return
			}
		}
		w.Header().Set("Allow", allow)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})
}
