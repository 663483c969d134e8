package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/catalog"
)

// NewHandler routes the JSON API over svc.
func NewHandler(svc *app.Service, log zerolog.Logger) http.Handler {
	h := &handler{svc: svc, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.accessLog)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalogs", h.listCatalogs)
		r.Get("/catalogs/{name}", h.queryCatalog)
		r.Get("/catalogs/{name}/facets", h.listFacets)
		r.Get("/catalogs/{name}/{id}", h.getRecord)
		r.Get("/gallery/{index}", h.galleryStop)
	})
	return r
}

type handler struct {
	svc *app.Service
	log zerolog.Logger
}

func (h *handler) listCatalogs(w http.ResponseWriter, r *http.Request) {
	infos, err := h.svc.Catalogs(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, http.StatusOK, map[string]any{
		"catalogs": infos,
		"count":    len(infos),
	})
}

func (h *handler) queryCatalog(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := catalog.Query{
		Search: params.Get("q"),
		Facet:  params.Get("facet"),
	}
	if v := params.Get("expanded"); v != "" {
		expanded, err := strconv.ParseBool(v)
		if err != nil {
			h.write(w, http.StatusBadRequest, errorBody("invalid expanded value "+strconv.Quote(v)))
			return
		}
		q.Expanded = expanded
	}
	res, err := h.svc.Query(r.Context(), chi.URLParam(r, "name"), q)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, http.StatusOK, res)
}

func (h *handler) listFacets(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	facets, err := h.svc.Facets(r.Context(), name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, http.StatusOK, map[string]any{
		"catalog": strings.ToLower(name),
		"facets":  facets,
	})
}

func (h *handler) getRecord(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Record(r.Context(), chi.URLParam(r, "name"), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, http.StatusOK, d)
}

func (h *handler) galleryStop(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		h.write(w, http.StatusBadRequest, errorBody("invalid gallery index "+strconv.Quote(raw)))
		return
	}
	stop, err := h.svc.GalleryStop(r.Context(), index)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, http.StatusOK, stop)
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, catalog.ErrUnknownCatalog), errors.Is(err, catalog.ErrNotFound):
		status = http.StatusNotFound
	default:
		h.log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	h.write(w, status, errorBody(err.Error()))
}

func (h *handler) write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	if err := enc.Encode(body); err != nil {
		h.log.Warn().Err(err).Msg("write response")
	}
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func (h *handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("took", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}
