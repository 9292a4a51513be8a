package gstr1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gstrly/internal/domain"
	"gstrly/internal/gstr1"
)

func TestClassify_Precedence(t *testing.T) {
	karnataka := "Karnataka"

	registered := &domain.Customer{Name: "Sharma Traders", GSTIN: "29AABCU9603R1ZM", State: "Karnataka"}
	interRegistered := &domain.Customer{Name: "Mehta Exports", GSTIN: "27AABCU9603R1ZN", State: "Maharashtra"}
	interConsumer := &domain.Customer{Name: "Walk-in", State: "Maharashtra"}
	localConsumer := &domain.Customer{Name: "Walk-in", State: "Karnataka"}
	statelessConsumer := &domain.Customer{Name: "Walk-in"}

	cases := []struct {
		name string
		inv  domain.Invoice
		cust *domain.Customer
		want domain.SupplyType
	}{
		{"override wins over everything", domain.Invoice{SupplyType: domain.SupplySEZWP, TotalAmount: 100}, registered, domain.SupplySEZWP},
		{"export only via override", domain.Invoice{SupplyType: domain.SupplyEXPWOP}, nil, domain.SupplyEXPWOP},
		{"no customer is b2cs", domain.Invoice{TotalAmount: 999999}, nil, domain.SupplyB2CS},
		{"gstin makes it b2b", domain.Invoice{TotalAmount: 1000}, registered, domain.SupplyB2B},
		{"gstin beats the large-invoice threshold", domain.Invoice{TotalAmount: 900000}, interRegistered, domain.SupplyB2B},
		{"large inter-state consumer sale is b2cl", domain.Invoice{TotalAmount: 300000}, interConsumer, domain.SupplyB2CL},
		{"threshold is strict", domain.Invoice{TotalAmount: 250000}, interConsumer, domain.SupplyB2CS},
		{"large intra-state consumer sale stays b2cs", domain.Invoice{TotalAmount: 300000}, localConsumer, domain.SupplyB2CS},
		{"no customer state stays b2cs", domain.Invoice{TotalAmount: 300000}, statelessConsumer, domain.SupplyB2CS},
		{"small consumer sale is b2cs", domain.Invoice{TotalAmount: 500}, interConsumer, domain.SupplyB2CS},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := gstr1.Classify(&tc.inv, tc.cust, karnataka)
			assert.Equal(t, tc.want, got)
		})
	}
}
