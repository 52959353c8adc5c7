package response

import (
	"testing"
	"time"

	"nimbushost/internal/domain/entities"
)

func TestFromService(t *testing.T) {
	now := time.Now().UTC()
	s := entities.Service{
		ID:            "s1",
		OwnerUserID:   "u1",
		PlanID:        "p1",
		PlanName:      "Starter",
		Price:         49.9,
		PaymentMethod: entities.PaymentMethodStripe,
		Status:        entities.ServiceStatusActive,
		Subdomain:     "mysite.example.com",
		PanelUsername: "mysite",
		OrderDate:     now,
		UpdatedAt:     now,
	}

	res := FromService(s)
	if res.ID != "s1" || res.PlanID != "p1" || res.PlanName != "Starter" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Price != 49.9 || res.PaymentMethod != "stripe" || res.Status != "active" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Subdomain != "mysite.example.com" || res.PanelUsername != "mysite" {
		t.Fatalf("unexpected panel coordinates: %+v", res)
	}
	if !res.OrderDate.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromServices(t *testing.T) {
	out := FromServices([]entities.Service{{ID: "s1"}, {ID: "s2"}})
	if len(out) != 2 || out[0].ID != "s1" || out[1].ID != "s2" {
		t.Fatalf("unexpected slice mapping: %+v", out)
	}
	if got := FromServices(nil); len(got) != 0 {
		t.Fatalf("expected empty slice, got %+v", got)
	}
}
