package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/br70-Solution/voxia-app/internal/analytics"

	"github.com/360EntSecGroup-Skylar/excelize"
)

const ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const columnLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type sheet struct {
	name    string
	headers []string
	rows    [][]interface{}
}

func cell(col, row int) string {
	return fmt.Sprintf("%c%d", columnLetters[col], row)
}

func joined(values []string) string {
	return strings.Join(values, ", ")
}

// ExportWorkbook renders every collection of ds as one sheet of an xlsx
// workbook. Nested values are written as text.
func ExportWorkbook(ds analytics.Dataset) ([]byte, error) {
	file := excelize.NewFile()
	for _, s := range datasetSheets(ds) {
		file.NewSheet(s.name)
		for col, header := range s.headers {
			file.SetCellValue(s.name, cell(col, 1), header)
		}
		for i, row := range s.rows {
			for col, value := range row {
				file.SetCellValue(s.name, cell(col, i+2), value)
			}
		}
	}
	file.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func datasetSheets(ds analytics.Dataset) []sheet {
	users := sheet{name: "Utilisateurs", headers: []string{"ID", "Nom", "Email", "Rôle", "Créé le", "Dernière connexion"}}
	for _, u := range ds.Users {
		users.rows = append(users.rows, []interface{}{u.ID, u.Name, u.Email, u.Role, u.CreatedAt, u.LastLogin})
	}

	patients := sheet{name: "Patients", headers: []string{"ID", "Prénom", "Nom", "Âge", "Date de naissance", "Sexe", "Téléphone", "Email", "Adresse", "Antécédents médicaux", "Antécédents audiologiques", "Créé le", "Dernière visite"}}
	for _, p := range ds.Patients {
		patients.rows = append(patients.rows, []interface{}{p.ID, p.FirstName, p.LastName, p.Age, p.DateOfBirth, p.Gender, p.Phone, p.Email, p.Address, p.MedicalHistory, p.AudiologicalHistory, p.CreatedAt, p.LastVisit})
	}

	audiograms := sheet{name: "Audiogrammes", headers: []string{"ID", "Patient", "Date", "Type", "OD aérienne", "OG aérienne", "Notes"}}
	for _, a := range ds.Audiograms {
		audiograms.rows = append(audiograms.rows, []interface{}{a.ID, a.PatientID, a.Date, a.Type, fmt.Sprint(a.RightEar.AirConduction), fmt.Sprint(a.LeftEar.AirConduction), a.Notes})
	}

	aids := sheet{name: "Appareils", headers: []string{"ID", "Marque", "Modèle", "Technologie", "Type", "Prix", "Fonctionnalités"}}
	for _, h := range ds.HearingAids {
		aids.rows = append(aids.rows, []interface{}{h.ID, h.Brand, h.Model, h.Technology, h.Type, h.Price.InexactFloat64(), joined(h.Features)})
	}

	devices := sheet{name: "Appareillages", headers: []string{"ID", "Patient", "Appareil", "Oreille", "Installé le", "Garantie", "Statut", "Réglages", "Satisfaction"}}
	for _, d := range ds.PatientDevices {
		devices.rows = append(devices.rows, []interface{}{d.ID, d.PatientID, d.HearingAidID, d.Ear, d.DateInstalled, d.Warranty, d.Status, len(d.Adjustments), d.LastSatisfaction()})
	}

	appointments := sheet{name: "Rendez-vous", headers: []string{"ID", "Patient", "Date", "Durée", "Type", "Statut", "Notes"}}
	for _, a := range ds.Appointments {
		appointments.rows = append(appointments.rows, []interface{}{a.ID, a.PatientID, a.Date, a.Duration, a.Type, a.Status, a.Notes})
	}

	invoices := sheet{name: "Factures", headers: []string{"ID", "Patient", "Date", "Montant", "Statut", "Articles", "Mutuelle"}}
	for _, inv := range ds.Invoices {
		descriptions := make([]string, len(inv.Items))
		for i, item := range inv.Items {
			descriptions[i] = fmt.Sprintf("%d x %s", item.Quantity, item.Description)
		}
		invoices.rows = append(invoices.rows, []interface{}{inv.ID, inv.PatientID, inv.Date, inv.Amount.InexactFloat64(), inv.Status, joined(descriptions), inv.Insurance})
	}

	expenses := sheet{name: "Dépenses", headers: []string{"ID", "Date", "Catégorie", "Description", "Montant", "Fournisseur", "Statut", "Paiement", "Notes"}}
	for _, e := range ds.Expenses {
		expenses.rows = append(expenses.rows, []interface{}{e.ID, e.Date, e.Category, e.Description, e.Amount.InexactFloat64(), e.Supplier, e.Status, e.PaymentMethod, e.Notes})
	}

	stock := sheet{name: "Stock", headers: []string{"ID", "Nom", "Catégorie", "SKU", "Marque", "Unité", "Quantité", "Min", "Max", "Prix d'achat", "Prix de vente", "Emplacement", "Fournisseur", "Dernier réapprovisionnement"}}
	for _, s := range ds.StockItems {
		stock.rows = append(stock.rows, []interface{}{s.ID, s.Name, s.Category, s.SKU, s.Brand, s.Unit, s.Quantity, s.MinQuantity, s.MaxQuantity, s.PurchasePrice.InexactFloat64(), s.SalePrice.InexactFloat64(), s.Location, s.Supplier, s.LastRestock})
	}

	return []sheet{users, patients, audiograms, aids, devices, appointments, invoices, expenses, stock}
}
