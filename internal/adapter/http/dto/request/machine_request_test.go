package request

import (
	"testing"
	"time"
)

func TestMachineRequest_ToDetails(t *testing.T) {
	acquired := time.Date(2022, 5, 1, 0, 0, 0, 0, time.UTC)
	r := MachineRequest{
		Code:             "ESC-001",
		Type:             "EXCAVATOR",
		Brand:            "Caterpillar",
		Model:            "320",
		Year:             2022,
		SerialNumber:     "SN-123",
		HourMeter:        1500,
		AcquisitionDate:  acquired,
		AcquisitionValue: 850000,
		UsefulLifeHours:  10000,
		Location:         "Obra Norte",
	}

	d := r.ToDetails()
	if d.Type != "EXCAVATOR" || d.Brand != "Caterpillar" || d.Model != "320" {
		t.Fatalf("unexpected details: %+v", d)
	}
	if d.Year != 2022 || d.SerialNumber != "SN-123" || d.Location != "Obra Norte" {
		t.Fatalf("unexpected details: %+v", d)
	}
	if !d.AcquisitionDate.Equal(acquired) || d.AcquisitionValue != 850000 || d.UsefulLifeHours != 10000 {
		t.Fatalf("unexpected acquisition fields: %+v", d)
	}
}
