package refdata

import (
	"fmt"
	"math/rand/v2"

	"github.com/bxcodec/faker/v4"

	"github.com/ailab/timesheetgen/internal/model"
)

var syntheticRoles = []string{
	"ML Engineer",
	"Backend Engineer",
	"Frontend Engineer",
	"Data Engineer",
	"Research Scientist",
	"QA Engineer",
}

var syntheticSkills = []string{
	"Python", "Go", "TypeScript", "SQL", "Spark",
	"PyTorch", "Kubernetes", "React", "Airflow", "LLMs",
}

var syntheticTasks = []string{
	"Feature development",
	"Bug triage and fixes",
	"Code review",
	"Pipeline maintenance",
	"Experiment analysis",
	"Documentation updates",
	"Sprint ceremonies",
}

// Synthesize fabricates n extra employees with faker names, appended
// after the fixed roster's IDs (emp-006, emp-007, ...). Attributes are
// drawn from small fixed pools; the names are the only faker output.
func Synthesize(n int) []model.Employee {
	out := make([]model.Employee, n)
	for i := range n {
		out[i] = model.Employee{
			ID:             fmt.Sprintf("emp-%03d", len(employees)+i+1),
			Name:           faker.Name(),
			Role:           syntheticRoles[rand.IntN(len(syntheticRoles))],
			Skills:         pick(syntheticSkills, 3),
			TaskCategories: pick(syntheticTasks, 4),
		}
	}
	return out
}

// pick returns k distinct elements of pool in random order.
func pick(pool []string, k int) []string {
	idx := rand.Perm(len(pool))
	out := make([]string, 0, k)
	for _, j := range idx[:k] {
		out = append(out, pool[j])
	}
	return out
}
