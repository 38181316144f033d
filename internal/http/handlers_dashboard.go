package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	applog "banalysis/internal/log"
	"banalysis/internal/statement"
)

// handleDashboard renders the main dashboard page.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		MethodNotAllowedError("GET").Write(w)
		return
	}

	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded",
			applog.FieldPath, r.URL.Path,
			applog.FieldComponent, applog.ComponentTemplate)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	st, loaded := s.statements.Current()
	data := struct {
		Table   tableView
		Summary summaryView
	}{
		Table:   newTableView(st, loaded),
		Summary: newSummaryView(st, loaded),
	}

	if err := s.templates.ExecuteTemplate(w, "dashboard_page", data); err != nil {
		slog.ErrorContext(r.Context(), "Dashboard template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleTransactionsPartial returns the transactions table partial for
// the current statement.
func (s *Server) handleTransactionsPartial(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		MethodNotAllowedError("GET").Write(w)
		return
	}

	st, loaded := s.statements.Current()
	body, err := s.renderPartial("transactions_table", newTableView(st, loaded))
	if err != nil {
		slog.ErrorContext(r.Context(), "Transactions partial failed", "error", err)
		InternalServerError("could not render transactions").Write(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

// handleSummaryPartial returns the stat strip partial.
func (s *Server) handleSummaryPartial(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		MethodNotAllowedError("GET").Write(w)
		return
	}

	st, loaded := s.statements.Current()
	body, err := s.renderPartial("stat_strip", newSummaryView(st, loaded))
	if err != nil {
		slog.ErrorContext(r.Context(), "Summary partial failed", "error", err)
		InternalServerError("could not render summary").Write(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

// chartPoint is one plotted transaction: the balance line runs through
// Balance, the marker sits at AbsAmount coloured by sign.
type chartPoint struct {
	Date        string  `json:"date"`
	Balance     float64 `json:"balance"`
	Amount      float64 `json:"amount"`
	AbsAmount   float64 `json:"abs_amount"`
	Colour      string  `json:"colour"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
}

type chartBounds struct {
	MinDate string `json:"min_date"`
	MaxDate string `json:"max_date"`
	YMax    int64  `json:"y_max"`
}

type chartData struct {
	Loaded bool         `json:"loaded"`
	Points []chartPoint `json:"points"`
	Bounds chartBounds  `json:"bounds"`
}

// Defaults for an empty chart: the last two years on the date axis and
// a 10000 value ceiling.
const (
	emptyChartSpan = 2 * 365 * 24 * time.Hour
	emptyChartYMax = 10000
)

// handleChartData returns the JSON series the chart script plots.
func (s *Server) handleChartData(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		MethodNotAllowedError("GET").Write(w)
		return
	}

	st, loaded := s.statements.Current()
	data := buildChartData(st, loaded, time.Now().UTC())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.ErrorContext(r.Context(), "Chart data encoding failed", "error", err)
	}
}

func buildChartData(st statement.Statement, loaded bool, now time.Time) chartData {
	if !loaded || st.Summary.Transactions == 0 {
		return chartData{
			Points: []chartPoint{},
			Bounds: chartBounds{
				MinDate: now.Add(-emptyChartSpan).Format("2006-01-02"),
				MaxDate: now.Format("2006-01-02"),
				YMax:    emptyChartYMax,
			},
		}
	}

	points := make([]chartPoint, 0, len(st.Transactions))
	for _, tx := range st.Transactions {
		points = append(points, chartPoint{
			Date:        tx.Date.ISO(),
			Balance:     tx.Balance.InexactFloat64(),
			Amount:      tx.Amount.InexactFloat64(),
			AbsAmount:   tx.AbsAmount().InexactFloat64(),
			Colour:      tx.Colour(),
			Description: tx.Description,
			Type:        tx.Type,
		})
	}

	return chartData{
		Loaded: true,
		Points: points,
		Bounds: chartBounds{
			MinDate: st.Summary.MinDate.ISO(),
			MaxDate: st.Summary.MaxDate.ISO(),
			YMax:    st.Summary.ValueCeiling,
		},
	}
}
