package mux

import (
	"context"
	"net/http"

	"holdemtable-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxDealerKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss
}

// NewMux returns a new HTTP mux serving the tables in pitBoss
func NewMux(version string, pitBoss *room.PitBoss) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/table").Handler(this.getTable())
	r.Methods(http.MethodPost).Path("/table").Handler(this.postTable())

	tr := r.PathPrefix("/table/{id}").Subrouter()
	tr.Use(this.tableMiddleware)

	tr.Methods(http.MethodGet).Path("").Handler(this.getTableID())
	tr.Methods(http.MethodDelete).Path("").Handler(this.deleteTableID())
	tr.Methods(http.MethodGet).Path("/ws").Handler(this.getTableIDWS())
	tr.Methods(http.MethodPost).Path("/seat").Handler(this.postTableIDSeat())
	tr.Methods(http.MethodDelete).Path("/seat/{name}").Handler(this.deleteTableIDSeat())
	tr.Methods(http.MethodPost).Path("/chips").Handler(this.postTableIDChips())
	tr.Methods(http.MethodPost).Path("/round").Handler(this.postTableIDRound())
	tr.Methods(http.MethodDelete).Path("/round").Handler(this.deleteTableIDRound())
	tr.Methods(http.MethodPost).Path("/street").Handler(this.postTableIDStreet())
	tr.Methods(http.MethodPost).Path("/action").Handler(this.postTableIDAction())
	tr.Methods(http.MethodGet).Path("/actions").Handler(this.getTableIDActions())
	tr.Methods(http.MethodGet).Path("/log").Handler(this.getTableIDLog())

	return this
}

func (m *Mux) tableMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dealer, err := m.pitBoss.Dealer(gmux.Vars(r)["id"])
		if err != nil {
			writeEngineError(w, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxDealerKey, dealer)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func dealerFromRequest(r *http.Request) *room.Dealer {
	return r.Context().Value(ctxDealerKey).(*room.Dealer)
}
