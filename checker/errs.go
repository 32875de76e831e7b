package checker

import "errors"

// ErrStructure is returned when a justification cites a line number that
// does not exist, or a ded cites a line set that is not a registered
// sub-proof.
var ErrStructure = errors.New("structure error")
