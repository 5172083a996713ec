/*
Package server offers bidi resolution over HTTP.

    POST /v1/visual?dir=rtl        body: text in logical order → text in visual order
    POST /v1/levels?dir=auto       body: text → JSON paragraphs with embedding levels
    GET  /v1/lookup/{codepoint}    → JSON bidi properties of a code point (hex)
    GET  /metrics                  → Prometheus metrics
*/
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"

	"github.com/docker/go-metrics"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/npillmayer/bidivis"
	"github.com/npillmayer/bidivis/bidi"
	"github.com/npillmayer/bidivis/ucd"
	"github.com/npillmayer/bidivis/utf8codec"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// MaxBodySize limits the size of request bodies.
const MaxBodySize = 1 << 20

// Server dispatches HTTP requests to a bidivis engine.
type Server struct {
	engine *bidivis.Engine
	router *mux.Router
}

// New creates a server for engine. The engine stays owned by the caller.
func New(engine *bidivis.Engine) *Server {
	s := &Server{engine: engine, router: mux.NewRouter()}
	s.router.Handle("/v1/visual", handlers.MethodHandler{
		"POST": http.HandlerFunc(s.postVisual),
	})
	s.router.Handle("/v1/levels", handlers.MethodHandler{
		"POST": http.HandlerFunc(s.postLevels),
	})
	s.router.Handle("/v1/lookup/{codepoint:[0-9A-Fa-f]{1,6}}", handlers.MethodHandler{
		"GET": http.HandlerFunc(s.getLookup),
	})
	s.router.Handle("/metrics", metrics.Handler())
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type paragraphResponse struct {
	Level  int    `json:"level"`
	Text   string `json:"text"`
	Levels []int  `json:"levels"`
}

type lookupResponse struct {
	CodePoint string `json:"codepoint"`
	Known     bool   `json:"known"`
	Class     string `json:"class,omitempty"`
	Mirrored  bool   `json:"mirrored"`
	Mirror    string `json:"mirror,omitempty"`
}

// serveJSON marshals v and sets the content-type header to
// 'application/json'.
func serveJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		T().Errorf("server: encoding response: %v", err)
	}
}

func serveError(w http.ResponseWriter, err error) {
	status, code := http.StatusBadRequest, "INVALID"
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, utf8codec.ErrMalformed):
		code = "MALFORMED_UTF8"
	case errors.Is(err, utf8codec.ErrScalarOutOfRange):
		code = "SCALAR_OUT_OF_RANGE"
	case errors.As(err, &tooLarge):
		status, code = http.StatusRequestEntityTooLarge, "TOO_LARGE"
	}
	serveJSON(w, status, errorResponse{Code: code, Message: err.Error()})
}

// request reads the body and the requested direction of a request.
func (s *Server) request(w http.ResponseWriter, r *http.Request) ([]byte, bidi.Direction, error) {
	defer r.Body.Close()
	dir := s.engine.Direction
	if d := r.URL.Query().Get("dir"); d != "" {
		var err error
		if dir, err = bidi.ParseDirection(d); err != nil {
			return nil, dir, err
		}
	}
	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	return body, dir, err
}

func (s *Server) postVisual(w http.ResponseWriter, r *http.Request) {
	input, dir, err := s.request(w, r)
	if err != nil {
		serveError(w, err)
		return
	}
	visual, err := s.engine.ResolveVisualOrder(input, dir)
	if err != nil {
		serveError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(visual)))
	w.WriteHeader(http.StatusOK)
	w.Write(visual)
}

func (s *Server) postLevels(w http.ResponseWriter, r *http.Request) {
	input, dir, err := s.request(w, r)
	if err != nil {
		serveError(w, err)
		return
	}
	paras, err := s.engine.Paragraphs(input, dir)
	if err != nil {
		serveError(w, err)
		return
	}
	resp := make([]paragraphResponse, len(paras))
	for i, p := range paras {
		resp[i] = paragraphResponse{Level: p.Level, Text: p.Text(), Levels: p.Levels()}
	}
	serveJSON(w, http.StatusOK, resp)
}

func (s *Server) getLookup(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.ParseUint(mux.Vars(r)["codepoint"], 16, 32)
	if err != nil {
		serveError(w, err)
		return
	}
	cp := rune(n)
	resp := lookupResponse{CodePoint: fmt.Sprintf("%U", cp)}
	if props, ok := s.engine.Props.Lookup(cp); ok {
		resp.Known = true
		resp.Class = ucd.ClassString(props.Class)
		resp.Mirrored = props.Mirrored
		if m := s.engine.Mirrors.Mirror(cp); m != cp {
			resp.Mirror = fmt.Sprintf("%U", m)
		}
	}
	serveJSON(w, http.StatusOK, resp)
}
