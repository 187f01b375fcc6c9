package models

import "testing"

func TestAssociation(t *testing.T) {
	t.Run("Path", func(t *testing.T) {
		a := Association{Kind: KindTrack, Parent: "P1", Child: "T1"}
		if got := a.Path(); got != "/playlist/P1/T1" {
			t.Errorf("Path() = %s, want /playlist/P1/T1", got)
		}
	})

	t.Run("Label", func(t *testing.T) {
		tt := []struct {
			kind AssociationKind
			want string
		}{
			{KindTrack, "track"},
			{KindRandomTrack, "random track"},
			{KindPlaylist, "playlist"},
		}
		for _, tc := range tt {
			if got := tc.kind.Label(); got != tc.want {
				t.Errorf("%s.Label() = %s, want %s", tc.kind, got, tc.want)
			}
		}
	})
}

func TestOutcome(t *testing.T) {
	tt := []struct {
		code int
		want bool
	}{
		{200, true},
		{201, false},
		{401, false},
		{500, false},
	}

	for _, tc := range tt {
		if got := (Outcome{StatusCode: tc.code}).OK(); got != tc.want {
			t.Errorf("Outcome{%d}.OK() = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestNewRun(t *testing.T) {
	run := NewRun("id", "http://localhost:10000/v1", "a@a.com", 2, 3)

	if run.Status != RunRunning {
		t.Errorf("expected status running, got %s", run.Status)
	}
	if run.StartedAt.IsZero() {
		t.Error("expected StartedAt to be set")
	}
	if run.FinishedAt != nil {
		t.Error("expected FinishedAt to be nil")
	}
}

func TestAssociationPathEscapes(t *testing.T) {
	a := Association{Kind: KindTrack, Parent: "a b", Child: "c/d"}
	if got := a.Path(); got != "/playlist/a%20b/c%2Fd" {
		t.Errorf("Path() = %s", got)
	}
}
