package mux

import (
	"errors"
	"net/http"

	"holdemtable-server/pkg/poker/action"
	"holdemtable-server/pkg/poker/holdem"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type getTableResponse struct {
	Tables []string `json:"tables"`
	Total  int      `json:"total"`
}

func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		ids := m.pitBoss.TableIDs()
		total := len(ids)
		if start > total {
			start = total
		}

		end := start + rows
		if end > total {
			end = total
		}

		writeJSON(w, http.StatusOK, getTableResponse{
			Tables: ids[start:end],
			Total:  total,
		})
	}
}

type postTablePayload struct {
	ID      string   `json:"id"`
	Players []string `json:"players"`
}

func (m *Mux) postTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTablePayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if len(pp.Players) > holdem.MaxSeats {
			writeJSONError(w, http.StatusBadRequest, errors.New("too many players for one table"))
			return
		}

		dealer, err := m.pitBoss.CreateTable(pp.ID)
		if err != nil {
			writeEngineError(w, err)
			return
		}

		for seat, name := range pp.Players {
			if err := dealer.Join(name, seat); err != nil {
				// don't leave a half-seated table behind
				_ = m.pitBoss.DestroyTable(dealer.ID())
				writeEngineError(w, err)
				return
			}
		}

		writeJSON(w, http.StatusCreated, dealer.State(""))
	}
}

func (m *Mux) getTableID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dealerFromRequest(r).State(r.FormValue("viewer")))
	}
}

func (m *Mux) deleteTableID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := m.pitBoss.DestroyTable(dealerFromRequest(r).ID()); err != nil {
			writeEngineError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type postTableIDSeatPayload struct {
	Name string `json:"name"`
	Seat int    `json:"seat"`
}

func (m *Mux) postTableIDSeat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTableIDSeatPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		dealer := dealerFromRequest(r)
		if err := dealer.Join(pp.Name, pp.Seat); err != nil {
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, dealer.State(pp.Name))
	}
}

func (m *Mux) deleteTableIDSeat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := dealerFromRequest(r)
		if err := dealer.Leave(mux.Vars(r)["name"]); err != nil {
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, dealer.State(""))
	}
}

type postTableIDChipsPayload struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

func (m *Mux) postTableIDChips() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTableIDChipsPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		dealer := dealerFromRequest(r)
		if err := dealer.AddChips(pp.Name, pp.Amount); err != nil {
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, dealer.State(pp.Name))
	}
}

func (m *Mux) postTableIDRound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := dealerFromRequest(r)
		if err := dealer.StartRound(); err != nil {
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, dealer.State(r.FormValue("viewer")))
	}
}

func (m *Mux) deleteTableIDRound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := dealerFromRequest(r)
		if err := dealer.ResetRound(); err != nil {
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, dealer.State(r.FormValue("viewer")))
	}
}

func (m *Mux) postTableIDStreet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := dealerFromRequest(r).DealNextStreet()
		if err != nil {
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

type postTableIDActionPayload struct {
	Name   string `json:"name"`
	Action string `json:"action"`
	Amount int    `json:"amount"`
}

func (m *Mux) postTableIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postTableIDActionPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		a, err := action.FromString(pp.Action)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if a.RequiresAmount() && pp.Amount <= 0 {
			writeEngineError(w, holdem.ErrInvalidAmount)
			return
		}

		dealer := dealerFromRequest(r)
		if err := dealer.Act(pp.Name, a, pp.Amount); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"table":  dealer.ID(),
				"player": pp.Name,
				"action": pp.Action,
			}).Debug("rejected action")
			writeEngineError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, dealer.State(pp.Name))
	}
}

type getTableIDActionsResponse struct {
	Name    string          `json:"name"`
	Actions []action.Action `json:"actions"`
}

func (m *Mux) getTableIDActions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.FormValue("name")
		actions := dealerFromRequest(r).LegalActions(name)
		if actions == nil {
			actions = []action.Action{}
		}

		writeJSON(w, http.StatusOK, getTableIDActionsResponse{
			Name:    name,
			Actions: actions,
		})
	}
}

func (m *Mux) getTableIDLog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dealerFromRequest(r).HandLog())
	}
}
