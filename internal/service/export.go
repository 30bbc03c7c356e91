package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/kostec-kr/erp-backend/internal/repository"
	"github.com/xuri/excelize/v2"
)

// ExportService 订单/发票 XLSX 导出
type ExportService interface {
	ExportOrders(ctx context.Context, filter *repository.OrderFilter) (*bytes.Buffer, error)
	ExportInvoices(ctx context.Context, filter *repository.InvoiceFilter) (*bytes.Buffer, error)
}

type exportService struct {
	orderRepo   repository.OrderRepository
	invoiceRepo repository.InvoiceRepository
}

// NewExportService 创建导出服务
func NewExportService(orderRepo repository.OrderRepository, invoiceRepo repository.InvoiceRepository) ExportService {
	return &exportService{orderRepo: orderRepo, invoiceRepo: invoiceRepo}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func refID(id *uint) string {
	if id == nil {
		return ""
	}
	return fmt.Sprintf("%d", *id)
}

// ExportOrders 导出订单表
func (s *exportService) ExportOrders(ctx context.Context, filter *repository.OrderFilter) (*bytes.Buffer, error) {
	orders, err := s.orderRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"ID", "订单号", "客户ID", "供应商ID", "主题", "金额", "币种", "下单日期", "交付日期", "状态"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, o := range orders {
		values := []interface{}{
			o.ID, o.PoNo, refID(o.CustomerID), refID(o.SupplierID), o.Subject,
			o.Amount, o.Currency, formatDate(o.OrderDate), formatDate(o.DueDate), o.Status,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ExportInvoices 导出发票表
func (s *exportService) ExportInvoices(ctx context.Context, filter *repository.InvoiceFilter) (*bytes.Buffer, error) {
	invoices, err := s.invoiceRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"ID", "发票号", "订单ID", "客户ID", "金额", "税额", "开票日期", "状态"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, inv := range invoices {
		values := []interface{}{
			inv.ID, inv.InvoiceNo, refID(inv.OrderID), refID(inv.CustomerID),
			inv.Amount, inv.TaxAmount, formatDate(inv.IssueDate), inv.Status,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
