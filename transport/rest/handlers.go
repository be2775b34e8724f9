package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

const maxBodyBytes = 1 << 10

var errBadRequest = errors.New("malformed request body")

type gamePlayService interface {
	StartSession(ctx context.Context, mode string) (*entity.Session, error)
	GetSession(ctx context.Context, sessionID string) (*entity.Session, error)
	Restart(ctx context.Context, sessionID string) (*entity.Session, error)
	EndSession(ctx context.Context, sessionID string) error

	MakeTurn(ctx context.Context, sessionID string, player tictactoe.Mark, cell int) (*entity.TurnResult, error)
	Hint(ctx context.Context, sessionID string) (int, error)
}

type createSessionRequest struct {
	Mode string `json:"mode"`
}

type turnRequest struct {
	Player tictactoe.Mark `json:"player,omitempty"`
	Cell   *int           `json:"cell"`
}

type hintResponse struct {
	Cell int `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type sessionHandlers struct {
	logger   *slog.Logger
	gamePlay gamePlayService
}

func newSessionHandlers(logger *slog.Logger, gamePlay gamePlayService) *sessionHandlers {
	return &sessionHandlers{
		logger:   logger.With("component", "rest"),
		gamePlay: gamePlay,
	}
}

func (that *sessionHandlers) createSession(w http.ResponseWriter, r *http.Request) {
	req := createSessionRequest{Mode: entity.ModeBot}
	if r.ContentLength != 0 {
		if err := decodeBody(r, &req); err != nil {
			that.writeError(w, "createSession", err)
			return
		}
	}

	session, err := that.gamePlay.StartSession(r.Context(), req.Mode)
	if err != nil {
		that.writeError(w, "createSession", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, session)
}

func (that *sessionHandlers) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.gamePlay.GetSession(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "getSession", err)
		return
	}

	that.writeJSON(w, http.StatusOK, session)
}

func (that *sessionHandlers) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := that.gamePlay.EndSession(r.Context(), r.PathValue("id")); err != nil {
		that.writeError(w, "deleteSession", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *sessionHandlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, "makeTurn", err)
		return
	}

	if req.Cell == nil {
		that.writeError(w, "makeTurn", fmt.Errorf("%w: cell is required", errBadRequest))
		return
	}

	if req.Player != tictactoe.Empty && !req.Player.IsPlayer() {
		that.writeError(w, "makeTurn", fmt.Errorf("%w: %q", tictactoe.ErrInvalidPlayer, req.Player))
		return
	}

	result, err := that.gamePlay.MakeTurn(r.Context(), r.PathValue("id"), req.Player, *req.Cell)
	if err != nil {
		that.writeError(w, "makeTurn", err)
		return
	}

	that.writeJSON(w, http.StatusOK, result)
}

func (that *sessionHandlers) hint(w http.ResponseWriter, r *http.Request) {
	cell, err := that.gamePlay.Hint(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "hint", err)
		return
	}

	that.writeJSON(w, http.StatusOK, hintResponse{Cell: cell})
}

func (that *sessionHandlers) restart(w http.ResponseWriter, r *http.Request) {
	session, err := that.gamePlay.Restart(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "restart", err)
		return
	}

	that.writeJSON(w, http.StatusOK, session)
}

func decodeBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, tictactoe.ErrInvalidCell),
		errors.Is(err, tictactoe.ErrInvalidPlayer),
		errors.Is(err, apperror.ErrUnknownMode):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, tictactoe.ErrCellOccupied),
		errors.Is(err, tictactoe.ErrNoLegalMoves),
		errors.Is(err, apperror.ErrNotYourTurn):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *sessionHandlers) writeError(w http.ResponseWriter, method string, err error) {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		message = http.StatusText(status)
	} else {
		that.logger.Debug("request rejected", "method", method, "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}

func (that *sessionHandlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
