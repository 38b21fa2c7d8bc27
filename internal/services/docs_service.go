package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"

	intconfig "flightdesk/internal/config"
	"flightdesk/internal/domain"
	"flightdesk/internal/domain/models"
	"flightdesk/internal/repositories"
	"flightdesk/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders per-passenger e-tickets and booking invoices. Both are
// only available once the booking is paid.
type DocsService struct {
	BookingRepo repositories.BookingRepo
	DB          *sql.DB
	RequestID   string
}

func (s DocsService) bookings() repositories.BookingRepo {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	if s.DB != nil {
		return repositories.BookingRepo{DB: s.DB}
	}
	return repositories.BookingRepo{DB: intconfig.DB}
}

func (s DocsService) GenerateETicket(passengerID int64) ([]byte, string, error) {
	p, err := s.bookings().GetPassenger(passengerID)
	if err != nil {
		return nil, "", err
	}
	b, err := s.paidBooking(p.BookingID)
	if err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("passenger_id=%d", passengerID))

	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	writeRow(pdf, "Kode Booking", b.Reference)
	writeRow(pdf, "Penumpang", p.Name)
	writeRow(pdf, "Tipe", strings.ToUpper(p.Type))
	writeRow(pdf, "Penerbangan", b.OutboundFlight)
	if b.ReturnFlight != "" {
		writeRow(pdf, "Penerbangan Pulang", b.ReturnFlight)
	}
	writeRow(pdf, "Status", b.Status)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "gagal membuat PDF", Err: err}
	}
	filename := fmt.Sprintf("eticket-%s-%d.pdf", b.Reference, passengerID)
	return buf.Bytes(), filename, nil
}

func (s DocsService) GenerateInvoice(bookingID int64) ([]byte, string, error) {
	b, err := s.paidBooking(bookingID)
	if err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%d", bookingID))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	writeRow(pdf, "Kode Booking", b.Reference)
	writeRow(pdf, "Nama Kontak", b.ContactName)
	writeRow(pdf, "Tarif Dasar", utils.FormatRupiah(b.Amounts.Base))
	writeRow(pdf, "Bagasi", utils.FormatRupiah(b.Amounts.Baggage))
	writeRow(pdf, "Makanan", utils.FormatRupiah(b.Amounts.Meal))
	if b.Amounts.Discount > 0 {
		writeRow(pdf, "Diskon", "-"+utils.FormatRupiah(b.Amounts.Discount))
	}
	if b.Amounts.Tax > 0 {
		writeRow(pdf, "Pajak", utils.FormatRupiah(b.Amounts.Tax))
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	writeRow(pdf, "Total", utils.FormatRupiah(b.Amounts.Final))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "gagal membuat PDF", Err: err}
	}
	filename := fmt.Sprintf("invoice-%s.pdf", b.Reference)
	return buf.Bytes(), filename, nil
}

func (s DocsService) paidBooking(bookingID int64) (models.Booking, error) {
	b, err := s.bookings().GetByID(bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if b.PaymentStatus != string(domain.PaymentPaid) {
		return models.Booking{}, domain.ConflictError{Resource: "booking", Msg: "pembayaran belum lunas"}
	}
	return b, nil
}

func writeRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(50, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}
