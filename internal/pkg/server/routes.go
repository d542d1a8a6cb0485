// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"fmt"
	"html"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
)

const contentTypeHTML = "text/html; charset=utf-8"

// notFoundDocument is the error page sent for unmatched requests.
const notFoundDocument = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Error</title>
</head>
<body>
<pre>%s</pre>
</body>
</html>
`

// Route is a fixed (method, path) pair and the text it responds with.
type Route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Body   string `json:"body"`
}

// Routes returns the routes served by the greeter.
func Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/", Body: "Hello world"},
		{Method: http.MethodGet, Path: "/evening", Body: "Good evening"},
	}
}

// NewRouter returns a router with every route in Routes registered.
// GET routes also answer HEAD. Paths match case-insensitively with an optional trailing slash,
// and every other request, including a known path with another method, gets a 404.
func NewRouter() *httprouter.Router {
	router := httprouter.New()
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.HandleMethodNotAllowed = false
	router.HandleOPTIONS = false
	for _, route := range Routes() {
		router.Handle(route.Method, route.Path, staticText(route.Body))
		if route.Method == http.MethodGet {
			router.Handle(http.MethodHead, route.Path, staticText(route.Body))
		}
	}
	router.NotFound = looseMatch(router)
	return router
}

// looseMatch retries a request that missed an exact match against its lowercased path
// without a trailing slash, and responds with a 404 if that misses too.
func looseMatch(router *httprouter.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if handle, ps, _ := router.Lookup(req.Method, loosePath(req.URL.Path)); handle != nil {
			handle(w, req, ps)
			return
		}
		notFound(w, req)
	})
}

func loosePath(path string) string {
	if n := len(path); n > 1 && path[n-1] == '/' && path[n-2] != '/' {
		path = path[:n-1]
	}
	return strings.ToLower(path)
}

func staticText(body string) httprouter.Handle {
	return func(w http.ResponseWriter, req *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", contentTypeHTML)
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(http.StatusOK)
		if req.Method == http.MethodHead {
			return
		}
		io.WriteString(w, body)
	}
}

func notFound(w http.ResponseWriter, req *http.Request) {
	msg := fmt.Sprintf("Cannot %s %s", req.Method, req.URL.EscapedPath())
	doc := fmt.Sprintf(notFoundDocument, html.EscapeString(msg))
	w.Header().Set("Content-Type", contentTypeHTML)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.Header().Set("Content-Security-Policy", "default-src 'none'")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusNotFound)
	if req.Method == http.MethodHead {
		return
	}
	io.WriteString(w, doc)
}
