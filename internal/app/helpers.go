package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/metinatakli/cinema-booking/internal/domain"
	appvalidator "github.com/metinatakli/cinema-booking/internal/validator"
)

type contextKey string

const loggerContextKey = contextKey("logger")

type viewResponse struct {
	View       View           `json:"view"`
	Attributes map[string]any `json:"attributes"`
}

func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}

	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

func (app *Application) renderView(w http.ResponseWriter, r *http.Request, status int, view View) {
	resp := viewResponse{
		View:       view,
		Attributes: app.attributes(r.Context()),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger, ok := r.Context().Value(loggerContextKey).(*slog.Logger)
	if !ok {
		return app.logger
	}

	return logger
}

func readInt(r *http.Request, key string) (int, error) {
	value := strings.TrimSpace(r.Form.Get(key))

	id, err := strconv.Atoi(value)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}

	return id, nil
}

func readSlot(r *http.Request) (domain.DayOfWeek, domain.TimeOfDay, error) {
	day, err := domain.ParseDayOfWeek(r.Form.Get("day"))
	if err != nil {
		return "", "", err
	}

	time, err := domain.ParseTimeOfDay(r.Form.Get("time"))
	if err != nil {
		return "", "", err
	}

	return day, time, nil
}

// validationMessage flattens validator errors into one sentence per field,
// ordered by field name.
func validationMessage(err error) string {
	messages := appvalidator.Messages(err)
	if messages == nil {
		return err.Error()
	}

	fields := slices.Sorted(maps.Keys(messages))
	parts := make([]string, 0, len(fields))

	for _, field := range fields {
		parts = append(parts, field+" "+messages[field])
	}

	return strings.Join(parts, "; ")
}
