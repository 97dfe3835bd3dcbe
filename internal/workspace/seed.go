package workspace

import (
	"fmt"

	"github.com/PAVAN4141/CA.ai/internal/domain"
)

// Demo data. Not a production data source: it exists so a fresh console has
// something to look at.

var demoClients = []domain.ClientDraft{
	{Name: "Alpha Tech Solutions", Email: "accounts@alphatech.com"},
	{Name: "Mehta Textiles", Email: "finance@mehtatextiles.in"},
	{Name: "Dr. Anjali Gupta", Email: "anjali@clinic.com"},
	{Name: "Sharma Traders", Email: "sharma@traders.com"},
}

var demoAudits = []domain.AuditDraft{
	{ClientName: "Alpha Tech Solutions", AuditType: "Statutory Audit", Date: "2024-03-31", Team: "Amit, Sarah", TimeEstimate: "40 hrs", Status: domain.AuditStatusInProgress},
	{ClientName: "Green Earth NGOs", AuditType: "Internal Audit", Date: "2024-04-15", Team: "Raj", TimeEstimate: "20 hrs", Status: domain.AuditStatusPending},
	{ClientName: "Mehta Textiles", AuditType: "Tax Audit", Date: "2024-09-30", Team: "Amit, Priya", TimeEstimate: "60 hrs", Status: domain.AuditStatusPending},
}

var demoTaxReturns = []domain.TaxDraft{
	{ClientName: "Sharma Traders", ReturnType: "GSTR-1", DueDate: "2024-04-11", Status: domain.TaxStatusFiled},
	{ClientName: "Sharma Traders", ReturnType: "GSTR-3B", DueDate: "2024-04-20", Status: domain.TaxStatusNotStarted},
	{ClientName: "Innovate Pvt Ltd", ReturnType: "TDS Q4", DueDate: "2024-05-31", Status: domain.TaxStatusProcessing},
	{ClientName: "Dr. Anjali Gupta", ReturnType: "ITR-4", DueDate: "2024-07-31", Status: domain.TaxStatusNotStarted},
}

// SeedDemo fills the directory, audit planner and tax tracker with demo records.
func SeedDemo(w *Workspace) error {
	for _, d := range demoClients {
		if _, err := w.Clients.Add(&d); err != nil {
			return fmt.Errorf("seed client: %w", err)
		}
	}
	for _, d := range demoAudits {
		if _, err := w.Audits.Add(&d); err != nil {
			return fmt.Errorf("seed audit: %w", err)
		}
	}
	for _, d := range demoTaxReturns {
		if _, err := w.TaxReturns.Add(&d); err != nil {
			return fmt.Errorf("seed tax return: %w", err)
		}
	}
	return nil
}
