package integrity

import "context"

// Checker runs a fixed battery of independent checks and aggregates the
// outcome. It never mutates state and never aborts early: a failing
// check does not stop its siblings, so operators see the full picture
// in one pass.
type Checker struct {
	checks []Check
	logger Logger
}

// NewChecker creates a new integrity checker
func NewChecker(checks []Check, logger Logger) *Checker {
	return &Checker{
		checks: checks,
		logger: logger,
	}
}

// Run evaluates every check and returns the aggregated summary
func (c *Checker) Run(ctx context.Context) *Summary {
	summary := &Summary{}

	for _, check := range c.checks {
		result := Result{Name: check.Name, Status: StatusPass}

		if err := check.Run(ctx); err != nil {
			result.Detail = err.Error()
			if check.Warn {
				result.Status = StatusWarn
				summary.Warned++
				c.logger.LogWarn("Check warned", map[string]interface{}{
					"check":  check.Name,
					"detail": result.Detail,
				})
			} else {
				result.Status = StatusFail
				summary.Failed++
				c.logger.LogError(err, "Check failed: "+check.Name)
			}
		} else {
			summary.Passed++
			c.logger.LogDebug("Check passed", map[string]interface{}{
				"check": check.Name,
			})
		}

		summary.Results = append(summary.Results, result)
	}

	c.logger.LogInfo("Integrity check complete", map[string]interface{}{
		"passed": summary.Passed,
		"failed": summary.Failed,
		"warned": summary.Warned,
	})
	return summary
}
