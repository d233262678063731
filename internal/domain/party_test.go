package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestCustomerRegisterActive(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	var c Customer

	if !c.RegisterActive(id) {
		t.Fatalf("RegisterActive = false for a new appointment, want true")
	}
	if len(c.AppointmentsActive) != 1 || c.AppointmentsActive[0] != id {
		t.Fatalf("active = %v, want [%s]", c.AppointmentsActive, id)
	}

	t.Run("duplicate", func(t *testing.T) {
		if c.RegisterActive(id) {
			t.Fatalf("RegisterActive = true for an already-active appointment, want false")
		}
		if len(c.AppointmentsActive) != 1 {
			t.Fatalf("active = %v, want a single entry", c.AppointmentsActive)
		}
	})

	t.Run("already in history", func(t *testing.T) {
		archived := uuid.MustParse("00000000-0000-0000-0000-0000000000a2")
		c.AppointmentsHistory = append(c.AppointmentsHistory, archived)
		if c.RegisterActive(archived) {
			t.Fatalf("RegisterActive = true for an archived appointment, want false")
		}
		if containsID(c.AppointmentsActive, archived) {
			t.Fatalf("archived appointment leaked into active: %v", c.AppointmentsActive)
		}
	})
}

func TestCustomerArchive(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	other := uuid.MustParse("00000000-0000-0000-0000-0000000000a2")

	var c Customer
	c.RegisterActive(id)
	c.RegisterActive(other)

	c.Archive(id)
	if containsID(c.AppointmentsActive, id) {
		t.Fatalf("active still contains %s after Archive", id)
	}
	if !containsID(c.AppointmentsActive, other) {
		t.Fatalf("Archive removed an unrelated appointment: %v", c.AppointmentsActive)
	}
	if !containsID(c.AppointmentsHistory, id) {
		t.Fatalf("history = %v, want to contain %s", c.AppointmentsHistory, id)
	}

	t.Run("repeat archive", func(t *testing.T) {
		c.Archive(id)
		if len(c.AppointmentsHistory) != 1 {
			t.Fatalf("history = %v, want a single entry", c.AppointmentsHistory)
		}
	})

	t.Run("never registered", func(t *testing.T) {
		unknown := uuid.MustParse("00000000-0000-0000-0000-0000000000a3")
		c.Archive(unknown)
		if !containsID(c.AppointmentsHistory, unknown) {
			t.Fatalf("history = %v, want to contain %s", c.AppointmentsHistory, unknown)
		}
	})
}

func TestEmployeeRosterMirrorsCustomer(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-0000000000a1")
	var e Employee

	if !e.RegisterActive(id) {
		t.Fatalf("RegisterActive = false for a new appointment, want true")
	}
	e.Archive(id)
	if containsID(e.AppointmentsActive, id) {
		t.Fatalf("active still contains %s after Archive", id)
	}
	if !containsID(e.AppointmentsHistory, id) {
		t.Fatalf("history = %v, want to contain %s", e.AppointmentsHistory, id)
	}
	if e.RegisterActive(id) {
		t.Fatalf("RegisterActive = true after archival, want false")
	}
}
