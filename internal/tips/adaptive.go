package tips

import (
	"fmt"

	"github.com/recenterhq/driftcheck/pkg/models"
)

// LabelFunc maps a dimension to a human-readable label in some locale.
type LabelFunc func(models.Dimension) string

// AdaptiveMessage acknowledges a recurring weakest dimension. recent holds
// the weakest dimensions of the caller's last few check-ins (order does not
// matter); when dim appears at least twice there, a short acknowledgment
// referencing the dimension's label is returned, otherwise "".
func AdaptiveMessage(dim models.Dimension, recent []models.Dimension, label LabelFunc) string {
	count := 0
	for _, d := range recent {
		if d == dim {
			count++
		}
	}
	if count < 2 {
		return ""
	}
	return fmt.Sprintf("%s keeps coming up as your weakest area lately. The suggestion below leans into it on purpose.", label(dim))
}
