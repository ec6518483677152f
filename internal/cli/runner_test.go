package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `PID1,POND^AMY,F,19890224
PID2,WILLIAMS^RORY,M,19881102
PID3,POND^AMY,F,19890224
PID4,POND^AMY,F,20010911
`

const wantReports = `0:
PID1,POND^AMY,F,19890224
PID3,POND^AMY,F,19890224
PID4,POND^AMY,F,20010911
1:
PID2,WILLIAMS^RORY,M,19881102
Different version, sorted by PID number
0:
PID4,POND^AMY,F,20010911
PID3,POND^AMY,F,19890224
PID1,POND^AMY,F,19890224
1:
PID2,WILLIAMS^RORY,M,19881102
`

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patients.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunEndToEnd(t *testing.T) {
	var out, diag bytes.Buffer
	opts := Options{
		InputPath: writeSample(t, sampleCSV),
		Out:       &out,
		Err:       &diag,
	}

	if err := Run(opts); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if out.String() != wantReports {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", out.String(), wantReports)
	}
	if !strings.Contains(diag.String(), "4 record(s)") {
		t.Errorf("diagnostics %q do not mention the record count", diag.String())
	}
}

func TestRunOutputFile(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "reports.txt")
	opts := Options{
		InputPath:  writeSample(t, sampleCSV),
		OutputFile: outFile,
		Out:        &bytes.Buffer{},
		Err:        &bytes.Buffer{},
	}

	if err := Run(opts); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != wantReports {
		t.Errorf("output file mismatch:\ngot:\n%s\nwant:\n%s", data, wantReports)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		opts func(t *testing.T) Options
	}{
		{
			"no input path",
			func(t *testing.T) Options { return Options{} },
		},
		{
			"missing file",
			func(t *testing.T) Options {
				return Options{InputPath: filepath.Join(t.TempDir(), "nope.csv")}
			},
		},
		{
			"malformed name",
			func(t *testing.T) Options {
				return Options{InputPath: writeSample(t, "PID1,POND,F,19890224\n")}
			},
		},
		{
			"malformed row",
			func(t *testing.T) Options {
				return Options{InputPath: writeSample(t, "PID1,POND^AMY,F\n")}
			},
		},
		{
			"malformed ID in sort pass",
			func(t *testing.T) Options {
				return Options{InputPath: writeSample(t, "XYZa,POND^AMY,F,19890224\n")}
			},
		},
		{
			"dicom mode on a plain file",
			func(t *testing.T) Options {
				return Options{InputPath: writeSample(t, sampleCSV), DicomMode: true}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts(t)
			opts.Out = &bytes.Buffer{}
			opts.Err = &bytes.Buffer{}
			if err := Run(opts); err == nil {
				t.Fatal("Run = nil error, want failure")
			}
		})
	}
}

func TestRunMalformedNameProducesNoReport(t *testing.T) {
	var out bytes.Buffer
	opts := Options{
		InputPath: writeSample(t, "PID1,POND,F,19890224\n"),
		Out:       &out,
		Err:       &bytes.Buffer{},
	}

	if err := Run(opts); err == nil {
		t.Fatal("Run = nil error, want malformed name error")
	}
	if out.Len() != 0 {
		t.Errorf("malformed name still produced output:\n%s", out.String())
	}
}
