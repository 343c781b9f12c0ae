package datarecording

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ExecTableName is the table that records how the program was run.
const ExecTableName = "exec_info"

// ExecInfo is one property of a program execution.
type ExecInfo struct {
	Property string
	Value    string
}

// execRecorder records the start time, the command line, the working
// directory and the end time of the program.
type execRecorder struct {
	recorder DataRecorder
	entries  []ExecInfo
}

func newExecRecorder(recorder DataRecorder) *execRecorder {
	recorder.CreateTable(ExecTableName, ExecInfo{})

	return &execRecorder{recorder: recorder}
}

// Start logs the current execution.
func (e *execRecorder) Start() {
	startTime := time.Now().Format("2006-01-02 15:04:05.000000000")
	e.entries = append(e.entries, ExecInfo{"Start Time", startTime})

	cmd := strings.Join(os.Args, " ")
	e.entries = append(e.entries, ExecInfo{"Command", cmd})

	cwd, err := os.Getwd()
	if err != nil {
		ex, exErr := os.Executable()
		if exErr != nil {
			panic(exErr)
		}

		cwd = filepath.Dir(ex)
	}

	e.entries = append(e.entries, ExecInfo{"Working Directory", cwd})
}

// End buffers the recorded properties along with the end time.
func (e *execRecorder) End() {
	for _, entry := range e.entries {
		e.recorder.InsertData(ExecTableName, entry)
	}

	endTime := time.Now().Format("2006-01-02 15:04:05.000000000")
	e.recorder.InsertData(ExecTableName, ExecInfo{"End Time", endTime})

	e.entries = nil
}
