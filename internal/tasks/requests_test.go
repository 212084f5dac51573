package tasks_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/kestrelworks/routekit/internal/tasks"
)

func TestCreateCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     tasks.CreateCommand
		wantErr bool
	}{
		{"valid", tasks.CreateCommand{Title: "write docs"}, false},
		{"valid with status", tasks.CreateCommand{Title: "x", Status: tasks.StatusDone}, false},
		{"missing title", tasks.CreateCommand{Notes: "orphan"}, true},
		{"title too long", tasks.CreateCommand{Title: strings.Repeat("a", 201)}, true},
		{"notes too long", tasks.CreateCommand{Title: "x", Notes: strings.Repeat("a", 2001)}, true},
		{"unknown status", tasks.CreateCommand{Title: "x", Status: "paused"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, tasks.ErrValidation) {
				t.Errorf("Validate() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestUpdateCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     tasks.UpdateCommand
		wantErr bool
	}{
		{"valid", tasks.UpdateCommand{Title: "x", Status: tasks.StatusOpen}, false},
		{"missing status", tasks.UpdateCommand{Title: "x"}, true},
		{"missing title", tasks.UpdateCommand{Status: tasks.StatusOpen}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", tasks.ErrNotFound, 404},
		{"validation", tasks.ErrValidation, 400},
		{"wrapped validation", errors.Join(errors.New("outer"), tasks.ErrValidation), 400},
		{"unknown", errors.New("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tasks.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
