package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	analyticsapp "ecomdash/internal/analytics/application"
	analyticsdomain "ecomdash/internal/analytics/domain"
	exportapp "ecomdash/internal/export/application"
	shareddomain "ecomdash/internal/shared/domain"
)

// Handlers contient les handlers HTTP du tableau de bord
type Handlers struct {
	dashboardService *analyticsapp.DashboardService
	exportService    *exportapp.ExportService
}

// NewHandlers crée une nouvelle instance des handlers
func NewHandlers(
	dashboardService *analyticsapp.DashboardService,
	exportService *exportapp.ExportService,
) *Handlers {
	return &Handlers{
		dashboardService: dashboardService,
		exportService:    exportService,
	}
}

// dashboardResponse réponse JSON du tableau de bord complet
type dashboardResponse struct {
	Window  windowJSON                 `json:"window"`
	Summary summaryJSON                `json:"summary"`
	Tables  *analyticsdomain.Dashboard `json:"tables"`
}

type windowJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// summaryJSON reprend les métriques d'en-tête du tableau de bord
type summaryJSON struct {
	TotalOrders         int                                      `json:"total_orders"`
	TotalRevenue        float64                                  `json:"total_revenue"`
	TotalRevenueDisplay string                                   `json:"total_revenue_display"`
	BestDay             string                                   `json:"best_day"`
	TopPaymentType      string                                   `json:"top_payment_type,omitempty"`
	TopPaymentAvg       string                                   `json:"top_payment_avg,omitempty"`
	AvgRecencyDays      float64                                  `json:"avg_recency_days"`
	AvgFrequency        float64                                  `json:"avg_frequency"`
	AvgMonetaryDisplay  string                                   `json:"avg_monetary_display"`
	TopCategories       []analyticsdomain.CategoryPopularityRow  `json:"top_categories"`
	BottomCategories    []analyticsdomain.CategoryPopularityRow  `json:"bottom_categories"`
}

// GetDashboard handler pour GET /api/dashboard?start=2006-01-02&end=2006-01-02
// Sans paramètres, la fenêtre couvre tout le jeu de données (bornes min/max
// observées), comme le sélecteur de dates du tableau de bord.
func (h *Handlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	window, err := h.parseWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dashboard := h.dashboardService.GetDashboard(window)

	resp := dashboardResponse{
		Window: windowJSON{
			Start: window.Start().Format("2006-01-02"),
			End:   window.End().Format("2006-01-02"),
		},
		Summary: buildSummary(dashboard),
		Tables:  dashboard,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Printf("[api] dashboard %s → %s servi en %v",
		resp.Window.Start, resp.Window.End, time.Since(start))
}

// ExportDashboardCSV handler pour GET /api/export/dashboard-csv
func (h *Handlers) ExportDashboardCSV(w http.ResponseWriter, r *http.Request) {
	window, err := h.parseWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := h.exportService.ExportDashboardToCSV(window)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="dashboard.csv"`)
	w.Write(data)
}

// ExportLinesCSV handler pour GET /api/export/csv
func (h *Handlers) ExportLinesCSV(w http.ResponseWriter, r *http.Request) {
	window, err := h.parseWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := h.exportService.ExportLinesToCSV(window)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="order_lines.csv"`)
	w.Write(data)
}

// ExportLinesParquet handler pour GET /api/export/parquet
func (h *Handlers) ExportLinesParquet(w http.ResponseWriter, r *http.Request) {
	window, err := h.parseWindow(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := h.exportService.ExportLinesToParquet(window)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="order_lines.parquet"`)
	w.Write(data)
}

// parseWindow lit les paramètres start/end (format 2006-01-02); à défaut la
// fenêtre couvre les bornes du jeu de données
func (h *Handlers) parseWindow(r *http.Request) (shareddomain.DateRange, error) {
	bounds, ok := h.dashboardService.Bounds()

	startParam := r.URL.Query().Get("start")
	endParam := r.URL.Query().Get("end")
	if startParam == "" && endParam == "" {
		if !ok {
			// Jeu de données vide: fenêtre vide, le filtre rendra zéro ligne
			return shareddomain.DateRange{}, nil
		}
		return bounds, nil
	}

	startDate := bounds.Start()
	endDate := bounds.End()

	if startParam != "" {
		t, err := time.Parse("2006-01-02", startParam)
		if err != nil {
			return shareddomain.DateRange{}, fmt.Errorf("invalid start date %q (expected YYYY-MM-DD)", startParam)
		}
		startDate = t
	}
	if endParam != "" {
		t, err := time.Parse("2006-01-02", endParam)
		if err != nil {
			return shareddomain.DateRange{}, fmt.Errorf("invalid end date %q (expected YYYY-MM-DD)", endParam)
		}
		endDate = t
	}

	return shareddomain.NewDateRange(startDate, endDate), nil
}

// buildSummary calcule les métriques d'en-tête à partir des tables dérivées
func buildSummary(d *analyticsdomain.Dashboard) summaryJSON {
	revenue, _ := shareddomain.NewBRL(d.TotalRevenue())
	avgMonetary, _ := shareddomain.NewBRL(d.AverageMonetary())

	summary := summaryJSON{
		TotalOrders:         d.TotalOrders(),
		TotalRevenue:        d.TotalRevenue(),
		TotalRevenueDisplay: revenue.Format(),
		BestDay:             d.BestDay(),
		AvgRecencyDays:      d.AverageRecency(),
		AvgFrequency:        d.AverageFrequency(),
		AvgMonetaryDisplay:  avgMonetary.Format(),
		TopCategories:       d.TopCategories(5),
		BottomCategories:    d.BottomCategories(5),
	}

	if top, ok := d.TopPaymentType(); ok {
		avg, _ := shareddomain.NewBRL(top.AvgPaymentValue)
		summary.TopPaymentType = top.PaymentType
		summary.TopPaymentAvg = avg.Format()
	}

	return summary
}
