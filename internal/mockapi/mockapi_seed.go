package mockapi

import (
	"context"
	"fmt"

	"go-hris-admin/internal/domain"

	"go.uber.org/zap"
)

// demoData is inserted in order, so the memory store assigns ids 1..n per
// collection and the references below line up.
var demoData = []struct {
	resource domain.Kind
	docs     []Document
}{
	{domain.KindDepartments, []Document{
		{"name": "Engineering"},
		{"name": "HR"},
		{"name": "Finance"},
	}},
	{domain.KindEmployees, []Document{
		{"firstName": "Abel", "lastName": "K.", "email": "abel@example.com", "departmentId": 1, "hireDate": "2020-02-15", "salary": 120000},
		{"firstName": "Elsa", "lastName": "M.", "email": "elsa@example.com", "departmentId": 2, "hireDate": "2021-06-10", "salary": 80000},
		{"name": "Amanuel G", "email": "amanuel@xoka.com", "departmentId": 1, "hireDate": "2022-01-10", "role": "Backend Dev"},
		{"name": "Liya S", "email": "liya@xoka.com", "departmentId": 2, "hireDate": "2023-11-02", "role": "HR Manager"},
	}},
	{domain.KindCandidates, []Document{
		{"name": "Thomas T.", "email": "thomas@example.com", "departmentId": 1, "status": "Interview"},
		{"name": "Sara K", "email": "sara@example.com", "departmentId": 3, "status": "Applied"},
	}},
	{domain.KindCompanies, []Document{
		{"name": "XOKA Tech", "location": "Addis Ababa"},
		{"name": "GreenLeaf", "location": "Nairobi"},
		{"name": "BluePeak LLC", "location": "Dubai"},
	}},
	{domain.KindSalaries, []Document{
		{"employeeId": 1, "amount": 120000, "currency": "USD"},
		{"employeeId": 2, "amount": 80000, "currency": "USD"},
	}},
}

// Seed loads the demo records into every collection that is still empty.
func Seed(ctx context.Context, store Store, logger *zap.Logger) error {
	for _, set := range demoData {
		existing, err := store.List(ctx, set.resource)
		if err != nil {
			return fmt.Errorf("seed %s: %w", set.resource, err)
		}
		if len(existing) > 0 {
			logger.Debug("seed skipped, collection not empty", zap.String("resource", string(set.resource)))
			continue
		}
		for _, doc := range set.docs {
			if _, err := store.Create(ctx, set.resource, doc); err != nil {
				return fmt.Errorf("seed %s: %w", set.resource, err)
			}
		}
		logger.Info("seeded collection", zap.String("resource", string(set.resource)), zap.Int("count", len(set.docs)))
	}
	return nil
}
