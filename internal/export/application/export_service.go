package application

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	analyticsapp "ecomdash/internal/analytics/application"
	"ecomdash/internal/export/domain"
	shareddomain "ecomdash/internal/shared/domain"
	sharedinfra "ecomdash/internal/shared/infrastructure"
)

// ExportService génère les exports CSV et Parquet du tableau de bord.
// Tout se construit en mémoire ([]byte), aucune écriture disque: les exports
// partent directement dans la réponse HTTP.
type ExportService struct {
	dashboardService *analyticsapp.DashboardService
	batchSize        int
	workerCount      int
}

// NewExportService crée une nouvelle instance de ExportService
func NewExportService(dashboardService *analyticsapp.DashboardService) *ExportService {
	return &ExportService{
		dashboardService: dashboardService,
		batchSize:        1000,
		workerCount:      4,
	}
}

// ExportDashboardToCSV exporte les cinq tables dérivées en un CSV sectionné
func (s *ExportService) ExportDashboardToCSV(window shareddomain.DateRange) ([]byte, error) {
	dashboard := s.dashboardService.GetDashboard(window)

	buf := bytes.NewBuffer(make([]byte, 0, 64*1024)) // 64 KB
	w := csv.NewWriter(buf)

	// Revenu et commandes par mois
	w.Write([]string{"Revenue And Orders By Month", "", "", "", "", ""})
	w.Write([]string{"year_month", "year", "month_no", "month", "total_payment_value", "order_count"})
	for _, row := range dashboard.RevenueOrders {
		w.Write([]string{
			row.YearMonth,
			strconv.Itoa(row.Year),
			strconv.Itoa(row.MonthNo),
			row.Month,
			strconv.FormatFloat(row.TotalPaymentValue, 'f', 2, 64),
			strconv.Itoa(row.OrderCount),
		})
	}
	w.Write([]string{})

	// Popularité des catégories
	w.Write([]string{"Category Popularity", ""})
	w.Write([]string{"category", "orders"})
	for _, row := range dashboard.Categories {
		w.Write([]string{row.Category, strconv.Itoa(row.Orders)})
	}
	w.Write([]string{})

	// Moyens de paiement
	w.Write([]string{"Payment Types", "", ""})
	w.Write([]string{"payment_type", "avg_payment_value", "distinct_order_count"})
	for _, row := range dashboard.PaymentTypes {
		w.Write([]string{
			row.PaymentType,
			strconv.FormatFloat(row.AvgPaymentValue, 'f', 2, 64),
			strconv.Itoa(row.DistinctOrderCount),
		})
	}
	w.Write([]string{})

	// Jours les plus actifs
	w.Write([]string{"Popular Days", ""})
	w.Write([]string{"day", "total_orders"})
	for _, row := range dashboard.PopularDays {
		w.Write([]string{row.Day, strconv.Itoa(row.TotalOrders)})
	}
	w.Write([]string{})

	// Segmentation RFM
	w.Write([]string{"RFM", "", "", ""})
	w.Write([]string{"customer_id", "frequency", "monetary", "recency_days"})
	for _, row := range dashboard.RFM {
		w.Write([]string{
			string(row.CustomerID),
			strconv.Itoa(row.Frequency),
			strconv.FormatFloat(row.Monetary, 'f', 2, 64),
			strconv.Itoa(row.RecencyDays),
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ExportLinesToCSV exporte les lignes de commande filtrées en CSV
func (s *ExportService) ExportLinesToCSV(window shareddomain.DateRange) ([]byte, error) {
	lines := s.dashboardService.FilteredLines(window)

	buf := bytes.NewBuffer(make([]byte, 0, 1024*1024)) // 1 MB initial
	w := csv.NewWriter(buf)

	if err := w.Write(domain.LineCSVHeaders()); err != nil {
		return nil, err
	}

	for i, line := range lines {
		if err := w.Write(domain.ToLineCSVRow(line)); err != nil {
			return nil, err
		}
		// Flush périodique pour limiter la pression mémoire du writer
		if (i+1)%s.batchSize == 0 {
			w.Flush()
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ExportLinesToParquet exporte les lignes de commande filtrées en Parquet
// (compression snappy). La conversion des lignes en projections se fait par
// lots via le worker pool; l'écriture Parquet reste séquentielle, le writer
// n'étant pas sûr en concurrence.
func (s *ExportService) ExportLinesToParquet(window shareddomain.DateRange) ([]byte, error) {
	lines := s.dashboardService.FilteredLines(window)

	rows := make([]domain.OrderLineParquet, len(lines))
	err := sharedinfra.RunBatches(s.workerCount, len(lines), s.batchSize, func(start, end int) error {
		for i := start; i < end; i++ {
			rows[i] = domain.ToParquetRow(lines[i])
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("converting order lines: %w", err)
	}

	fw := buffer.NewBufferFile()
	pw, err := writer.NewParquetWriter(fw, new(domain.OrderLineParquet), 2)
	if err != nil {
		return nil, fmt.Errorf("creating parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for i := range rows {
		if err := pw.Write(rows[i]); err != nil {
			return nil, fmt.Errorf("writing parquet row: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return nil, fmt.Errorf("finalizing parquet file: %w", err)
	}

	return fw.Bytes(), nil
}
