package scheduling

import (
	"context"
	"testing"

	"clinicore/models"
)

func validChargeRequest() models.PaymentRequest {
	return models.PaymentRequest{
		AppointmentID: "a1",
		PatientID:     "p1",
		Amount:        4500,
		Currency:      "usd",
	}
}

func TestSimulatedGatewayApproves(t *testing.T) {
	gw := NewSimulatedGateway(nil)

	receipt, err := gw.Charge(context.Background(), validChargeRequest())
	if err != nil {
		t.Fatalf("Charge failed: %v", err)
	}
	if receipt.Provider != "simulated" || receipt.TxnRef == "" {
		t.Errorf("receipt = %+v", receipt)
	}
	if receipt.Amount != 4500 {
		t.Errorf("amount = %d, want 4500", receipt.Amount)
	}
}

func TestSimulatedGatewayDeclineHook(t *testing.T) {
	gw := NewSimulatedGateway(nil)
	gw.Decline = func(req models.PaymentRequest) bool { return req.Amount > 1000 }

	if _, err := gw.Charge(context.Background(), validChargeRequest()); err == nil {
		t.Error("expected decline for large amount")
	}

	small := validChargeRequest()
	small.Amount = 500
	if _, err := gw.Charge(context.Background(), small); err != nil {
		t.Errorf("small charge should pass: %v", err)
	}
}

func TestChargeRequestValidation(t *testing.T) {
	gw := NewSimulatedGateway(nil)

	cases := map[string]func(*models.PaymentRequest){
		"zero amount":     func(r *models.PaymentRequest) { r.Amount = 0 },
		"negative amount": func(r *models.PaymentRequest) { r.Amount = -100 },
		"missing patient": func(r *models.PaymentRequest) { r.PatientID = "" },
		"missing currency": func(r *models.PaymentRequest) {
			r.Currency = ""
		},
	}
	for name, mutate := range cases {
		req := validChargeRequest()
		mutate(&req)
		if _, err := gw.Charge(context.Background(), req); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}
