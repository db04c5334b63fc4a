package executor

import (
	"log"

	"github.com/viant/s3flow/model/execution"
)

// Listener is invoked once an action method returns, regardless of the outcome
type Listener func(exec *execution.Execution, input, output interface{})

// LogListener logs action outcome with its duration
func LogListener(exec *execution.Execution, _, _ interface{}) {
	if exec == nil {
		return
	}
	if exec.Error != "" {
		log.Printf("action %v (%v.%v) failed after %v: %v", exec.Action, exec.Service, exec.Method, exec.Elapsed(), exec.Error)
		return
	}
	log.Printf("action %v (%v.%v) -> %v in %v", exec.Action, exec.Service, exec.Method, exec.ResultKey, exec.Elapsed())
}
