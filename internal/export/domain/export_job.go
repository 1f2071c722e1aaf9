package domain

import (
	"errors"
	"strconv"
	"time"

	datasetdomain "ecomdash/internal/dataset/domain"
	shareddomain "ecomdash/internal/shared/domain"
)

// ExportFormat représente le format d'export
type ExportFormat string

const (
	ExportFormatCSV     ExportFormat = "CSV"
	ExportFormatParquet ExportFormat = "Parquet"
)

// ExportType représente le type d'export
type ExportType string

const (
	// ExportTypeDashboard exporte les cinq tables dérivées
	ExportTypeDashboard ExportType = "dashboard"
	// ExportTypeLines exporte les lignes de commande filtrées
	ExportTypeLines ExportType = "lines"
)

// ExportJob représente une demande d'export sur une fenêtre de dates
type ExportJob struct {
	format     ExportFormat
	exportType ExportType
	window     shareddomain.DateRange
	createdAt  time.Time
}

// NewExportJob crée un nouveau job d'export avec validation
func NewExportJob(
	format ExportFormat,
	exportType ExportType,
	window shareddomain.DateRange,
) (*ExportJob, error) {
	if format != ExportFormatCSV && format != ExportFormatParquet {
		return nil, errors.New("invalid export format")
	}
	if exportType != ExportTypeDashboard && exportType != ExportTypeLines {
		return nil, errors.New("invalid export type")
	}

	return &ExportJob{
		format:     format,
		exportType: exportType,
		window:     window,
		createdAt:  time.Now(),
	}, nil
}

// Format retourne le format d'export
func (ej *ExportJob) Format() ExportFormat {
	return ej.format
}

// ExportType retourne le type d'export
func (ej *ExportJob) ExportType() ExportType {
	return ej.exportType
}

// Window retourne la fenêtre de dates de l'export
func (ej *ExportJob) Window() shareddomain.DateRange {
	return ej.window
}

// CreatedAt retourne la date de création
func (ej *ExportJob) CreatedAt() time.Time {
	return ej.createdAt
}

// OrderLineParquet projection d'une ligne de commande pour l'export Parquet
type OrderLineParquet struct {
	OrderID      string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	CustomerID   string  `parquet:"name=customer_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	ProductID    string  `parquet:"name=product_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	PurchasedAt  string  `parquet:"name=order_purchase_timestamp, type=BYTE_ARRAY, convertedtype=UTF8"`
	PaymentValue float64 `parquet:"name=payment_value, type=DOUBLE"`
	PaymentType  string  `parquet:"name=payment_type, type=BYTE_ARRAY, convertedtype=UTF8"`
	Category     string  `parquet:"name=product_category_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Day          string  `parquet:"name=day, type=BYTE_ARRAY, convertedtype=UTF8"`
	YearMonth    string  `parquet:"name=year_month, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// ToParquetRow convertit une ligne de commande en projection Parquet
func ToParquetRow(line datasetdomain.OrderLine) OrderLineParquet {
	return OrderLineParquet{
		OrderID:      string(line.OrderID),
		CustomerID:   string(line.CustomerID),
		ProductID:    string(line.ProductID),
		PurchasedAt:  line.PurchasedAt.Format("2006-01-02 15:04:05"),
		PaymentValue: line.PaymentValue,
		PaymentType:  line.PaymentType,
		Category:     line.Category,
		Day:          line.Day,
		YearMonth:    line.YearMonth,
	}
}

// LineCSVHeaders retourne les en-têtes CSV de l'export de lignes brutes
func LineCSVHeaders() []string {
	return []string{
		"order_id",
		"customer_id",
		"product_id",
		"order_purchase_timestamp",
		"payment_value",
		"payment_type",
		"product_category_name",
		"day",
		"year",
		"month_no",
		"month",
		"year_month",
	}
}

// ToLineCSVRow convertit une ligne de commande en enregistrement CSV
func ToLineCSVRow(line datasetdomain.OrderLine) []string {
	return []string{
		string(line.OrderID),
		string(line.CustomerID),
		string(line.ProductID),
		line.PurchasedAt.Format("2006-01-02 15:04:05"),
		strconv.FormatFloat(line.PaymentValue, 'f', 2, 64),
		line.PaymentType,
		line.Category,
		line.Day,
		strconv.Itoa(line.Year),
		strconv.Itoa(line.MonthNo),
		line.Month,
		line.YearMonth,
	}
}
