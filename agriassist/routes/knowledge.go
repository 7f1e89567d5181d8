// agriassist/routes/knowledge.go
package routes

import (
	"agriassist/agriassist/config"
	"agriassist/agriassist/controllers"
	"agriassist/agriassist/middlewares"
	"agriassist/agriassist/utils/types"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxUploadBytes = 32 << 20

// ChatbotDataRoutes serves the action-dispatched admin endpoint.
func ChatbotDataRoutes(ctrl *controllers.KnowledgeController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
			var req types.ChatbotDataRequest
			if err := decodeBody(r, &req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			res, err := ctrl.HandleAction(r.Context(), req)
			if err != nil {
				return nil, statusFor(err), err
			}
			return res, http.StatusOK, nil
		}))
	})
	return r
}

func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id: %w", err)
	}
	return id, nil
}

func KnowledgeRoutes(ctrl *controllers.KnowledgeController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
			records, err := ctrl.List(r.Context())
			if err != nil {
				return nil, statusFor(err), err
			}
			return records, http.StatusOK, nil
		}))

		gr.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
			var in types.KnowledgeInput
			if err := decodeBody(r, &in); err != nil {
				return nil, http.StatusBadRequest, err
			}
			rec, err := ctrl.Create(r.Context(), in)
			if err != nil {
				return nil, statusFor(err), err
			}
			return rec, http.StatusCreated, nil
		}))

		gr.Post("/files", handleJSON(func(r *http.Request) (any, int, error) {
			r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)
			if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
				return nil, http.StatusBadRequest, err
			}
			file, header, err := r.FormFile("file")
			if err != nil {
				return nil, http.StatusBadRequest, err
			}
			defer file.Close()
			res, err := ctrl.UploadFile(r.Context(), header.Filename, file, header.Size, header.Header.Get("Content-Type"))
			if err != nil {
				return nil, statusFor(err), err
			}
			return res, http.StatusCreated, nil
		}))

		gr.Get("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
			id, err := parseID(r)
			if err != nil {
				return nil, http.StatusBadRequest, err
			}
			rec, err := ctrl.Get(r.Context(), id)
			if err != nil {
				return nil, statusFor(err), err
			}
			return rec, http.StatusOK, nil
		}))

		gr.Put("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
			id, err := parseID(r)
			if err != nil {
				return nil, http.StatusBadRequest, err
			}
			var in types.KnowledgeUpdate
			if err := decodeBody(r, &in); err != nil {
				return nil, http.StatusBadRequest, err
			}
			rec, err := ctrl.Update(r.Context(), id, in)
			if err != nil {
				return nil, statusFor(err), err
			}
			return rec, http.StatusOK, nil
		}))

		gr.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
			id, err := parseID(r)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			if err := ctrl.Delete(r.Context(), id); err != nil {
				writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})
	return r
}
