package gametime

import "testing"

func TestSeconds(t *testing.T) {
	cases := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{clock: "00:00", want: 0},
		{clock: "09:30", want: 570},
		{clock: "60:00", want: 3600},
		{clock: "75:42", want: 4542},
		{clock: " 12:05 ", want: 725},
		{clock: "1205", wantErr: true},
		{clock: "12:61", wantErr: true},
		{clock: "-1:00", wantErr: true},
		{clock: "12:-5", wantErr: true},
		{clock: "ab:cd", wantErr: true},
		{clock: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := Seconds(tc.clock)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Seconds(%q): expected error, got %d", tc.clock, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Seconds(%q): unexpected error: %v", tc.clock, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Seconds(%q) = %d, want %d", tc.clock, got, tc.want)
		}
	}
}

func TestIsOvertime(t *testing.T) {
	if IsOvertime("60:00") {
		t.Fatal("exactly regulation must not be overtime")
	}
	if !IsOvertime("60:01") {
		t.Fatal("one second past regulation must be overtime")
	}
	if !IsOvertime("87:01") {
		t.Fatal("deep extra time must be overtime")
	}
	if IsOvertime("not-a-clock") {
		t.Fatal("unparseable time must not be overtime")
	}
}
