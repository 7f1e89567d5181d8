// agriassist/routes/chatbot.go
package routes

import (
	"agriassist/agriassist/controllers"
	"agriassist/agriassist/utils/logging"
	"agriassist/agriassist/utils/types"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ChatbotRoutes bounds POST / by timeout; the websocket is long-lived and
// only ends when either side closes it.
func ChatbotRoutes(ctrl *controllers.ChatbotController, timeout time.Duration) chi.Router {
	r := chi.NewRouter()

	// POST /chatbot : {message, language} -> reply
	r.Group(func(gr chi.Router) {
		if timeout > 0 {
			gr.Use(middleware.Timeout(timeout))
		}
		gr.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
			var req types.ChatbotRequest
			if err := decodeBody(r, &req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			return ctrl.Ask(r.Context(), req), http.StatusOK, nil
		}))
	})

	// GET /chatbot/ws : one reply frame per request frame
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusInternalError, "internal error")

		ctx := r.Context()
		for {
			typ, data, err := conn.Read(ctx)
			if err != nil {
				if s := websocket.CloseStatus(err); s != websocket.StatusNormalClosure && s != websocket.StatusGoingAway {
					logging.AppLogger.Info("chatbot ws closed", zap.Error(err))
				}
				return
			}
			if typ != websocket.MessageText {
				conn.Close(websocket.StatusUnsupportedData, "unsupported data")
				return
			}

			var req types.ChatbotRequest
			if err := json.Unmarshal(data, &req); err != nil {
				if err := conn.Write(ctx, websocket.MessageText, []byte(`{"error":"invalid json"}`)); err != nil {
					return
				}
				continue
			}

			out, err := json.Marshal(ctrl.Ask(ctx, req))
			if err != nil {
				return
			}
			if err := conn.Write(ctx, websocket.MessageText, out); err != nil {
				return
			}
		}
	})
	return r
}
