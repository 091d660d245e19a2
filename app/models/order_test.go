package models_test

import (
	"encoding/json"
	"testing"

	"github.com/shashiranjanraj/ordertrack/app/models"
)

func TestAmountLenientDecoding(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{`123.45`, 123.45},
		{`"123.45"`, 123.45},
		{`" 99 "`, 99},
		{`""`, 0},
		{`"abc"`, 0},
		{`null`, 0},
		{`"12,5"`, 0},
	}

	for _, tc := range cases {
		var a models.Amount
		if err := json.Unmarshal([]byte(tc.in), &a); err != nil {
			t.Errorf("Unmarshal(%s) errored: %v", tc.in, err)
			continue
		}
		if float64(a) != tc.want {
			t.Errorf("Unmarshal(%s) = %v, want %v", tc.in, float64(a), tc.want)
		}
	}
}

func TestAmountRoundTrip(t *testing.T) {
	out, err := json.Marshal(models.Amount(45.5))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "45.5" {
		t.Errorf("marshal = %s", out)
	}
}
