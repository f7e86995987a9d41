package conversation

import (
	"strings"
	"testing"

	"maleri_backend/internal/catalog"
	"maleri_backend/internal/estimate"
)

func testMachine(t *testing.T) *Machine {
	t.Helper()
	cat, errs := catalog.Load([]catalog.Row{
		{ID: "paint-walls", Name: "Täckmåla väggar", Unit: "area", LaborHoursPerUnit: 0.10, MaterialCostPerUnit: 18, DefaultLayers: 2, Surface: "wall", Synonyms: []string{"måla väggar"}},
		{ID: "paint-ceiling", Name: "Måla tak", Unit: "area", LaborHoursPerUnit: 0.12, MaterialCostPerUnit: 20, DefaultLayers: 2, Surface: "ceiling"},
	})
	if len(errs) != 0 {
		t.Fatalf("fixture catalog rejected rows: %v", errs)
	}
	return NewMachine(cat, estimate.DefaultPricingConfig())
}

func TestMachine_FullDialogue(t *testing.T) {
	m := testMachine(t)
	st := NewState("conv-1")

	steps := []struct {
		input    string
		wantStep Step
	}{
		{"Villa Ekbacken", StepAwaitingRoomName},
		{"vardagsrummet", StepAwaitingMeasurements},
		{"4 gånger 5 gånger 2,5", StepCollectingTasks},
		{"måla väggarna två lager", StepCollectingTasks},
		{"klar", StepAwaitingConfirmation},
		{"ja", StepDone},
	}

	for _, step := range steps {
		reply := m.ProcessInput(st, step.input)
		if reply.Step != step.wantStep {
			t.Fatalf("input %q: expected step %s, got %s (prompt %q)", step.input, step.wantStep, reply.Step, reply.Prompt)
		}
	}

	if st.ProjectName != "Villa Ekbacken" || st.RoomName != "vardagsrummet" {
		t.Fatalf("unexpected captured names: %q / %q", st.ProjectName, st.RoomName)
	}
	if len(st.LineItems) != 1 {
		t.Fatalf("expected 1 line item, got %+v", st.LineItems)
	}

	summary := m.Summarize(st)
	if summary.Totals.GrandTotal <= 0 {
		t.Fatalf("expected positive grand total, got %v", summary.Totals.GrandTotal)
	}
	if len(summary.Tasks) != 1 || summary.Tasks[0] != "måla väggarna två lager" {
		t.Fatalf("unexpected task list: %v", summary.Tasks)
	}
}

func TestMachine_FailedParseStaysInState(t *testing.T) {
	m := testMachine(t)
	st := NewState("conv-2")

	m.ProcessInput(st, "Projektet")
	m.ProcessInput(st, "köket")

	reply := m.ProcessInput(st, "ungefär lagom stort")
	if reply.Step != StepAwaitingMeasurements {
		t.Fatalf("expected to stay in measurements, got %s", reply.Step)
	}
	if !strings.Contains(reply.Prompt, "måtten") {
		t.Fatalf("expected a re-prompt about measurements, got %q", reply.Prompt)
	}

	reply = m.ProcessInput(st, "3 gånger 3 gånger 2,4")
	if reply.Step != StepCollectingTasks {
		t.Fatalf("expected collecting tasks after valid measurements, got %s", reply.Step)
	}
}

func TestMachine_UnrecognizedTaskKeepsCollecting(t *testing.T) {
	m := testMachine(t)
	st := stateAtTasks(t, m)

	reply := m.ProcessInput(st, "dansa runt i rummet")
	if reply.Step != StepCollectingTasks {
		t.Fatalf("expected to keep collecting, got %s", reply.Step)
	}
	if len(st.LineItems) != 0 {
		t.Fatalf("expected no line items, got %+v", st.LineItems)
	}
	if len(st.Errors) == 0 {
		t.Fatal("expected the failure to be recorded")
	}
}

func TestMachine_DoneWithoutTasksConfirmsEmptyEstimate(t *testing.T) {
	m := testMachine(t)
	st := stateAtTasks(t, m)

	reply := m.ProcessInput(st, "det var allt")
	if reply.Step != StepAwaitingConfirmation {
		t.Fatalf("expected confirmation step, got %s", reply.Step)
	}
	if !strings.Contains(reply.Prompt, "Inga arbeten") {
		t.Fatalf("expected empty-estimate summary, got %q", reply.Prompt)
	}
}

func TestMachine_DoneStateAcceptsNoInput(t *testing.T) {
	m := testMachine(t)
	st := stateAtTasks(t, m)
	m.ProcessInput(st, "klar")
	m.ProcessInput(st, "ja")

	if st.Step != StepDone {
		t.Fatalf("expected done, got %s", st.Step)
	}
	transcriptLen := len(st.Transcript)

	reply := m.ProcessInput(st, "måla taket")
	if reply.Step != StepDone {
		t.Fatalf("expected to remain done, got %s", reply.Step)
	}
	if len(st.LineItems) != 0 || len(st.Transcript) != transcriptLen {
		t.Fatal("finished conversation must not change")
	}
}

func TestMachine_RejectionRepeatsConfirmation(t *testing.T) {
	m := testMachine(t)
	st := stateAtTasks(t, m)
	m.ProcessInput(st, "måla väggarna")
	m.ProcessInput(st, "klar")

	reply := m.ProcessInput(st, "nej vänta")
	if reply.Step != StepAwaitingConfirmation {
		t.Fatalf("expected to stay awaiting confirmation, got %s", reply.Step)
	}
	if !strings.Contains(reply.Prompt, "Stämmer detta?") {
		t.Fatalf("expected repeated confirmation prompt, got %q", reply.Prompt)
	}
}

func stateAtTasks(t *testing.T, m *Machine) *State {
	t.Helper()
	st := NewState("conv-test")
	m.ProcessInput(st, "Projektet")
	m.ProcessInput(st, "sovrummet")
	reply := m.ProcessInput(st, "3 gånger 4 gånger 2,4")
	if reply.Step != StepCollectingTasks {
		t.Fatalf("fixture setup failed, step %s", reply.Step)
	}
	return st
}
