package money

import "testing"

func TestPlain(t *testing.T) {
  tests := map[int64]string{
    3200:   "32.0",
    3250:   "32.5",
    3333:   "33.33",
    0:      "0.0",
    5:      "0.05",
    -1250:  "-12.5",
    100000: "1000.0",
  }

  for minor, want := range tests {
    if got := Plain(minor); got != want {
      t.Errorf("Plain(%d) = %q, want %q", minor, got, want)
    }
  }
}

func TestSigned(t *testing.T) {
  tests := []struct {
    minor     int64
    precision int
    want      string
  }{
    {minor: 150, precision: 1, want: "+1.5"},
    {minor: 150, precision: 0, want: "+2"},
    {minor: 250, precision: 0, want: "+2"},
    {minor: 200, precision: 0, want: "+2"},
    {minor: 0, precision: 0, want: "+0"},
    {minor: 0, precision: 1, want: "+0.0"},
    {minor: -30, precision: 0, want: "-0"},
    {minor: -50, precision: 1, want: "-0.5"},
    {minor: -1000, precision: 1, want: "-10.0"},
  }

  for _, tt := range tests {
    if got := Signed(tt.minor, tt.precision); got != tt.want {
      t.Errorf("Signed(%d, %d) = %q, want %q", tt.minor, tt.precision, got, tt.want)
    }
  }
}

func TestString(t *testing.T) {
  if got := String(320000); got != "¥3,200.00" {
    t.Fatalf("String(320000) = %q", got)
  }
}
