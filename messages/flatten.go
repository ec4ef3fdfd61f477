package messages

import "strings"

// display names for roles in a flattened prompt
var roleLabels = map[Role]string{
	RoleSystem:    "System",
	RoleUser:      "User",
	RoleAssistant: "Assistant",
}

// Flatten renders an ordered message list as a single text prompt. Each
// message becomes a "{Role}: {content}" line, lines are joined with blank
// lines, and input order is preserved. Messages with unrecognized roles are
// dropped.
func Flatten(msgs []Message) string {
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		label, ok := roleLabels[m.Role]
		if !ok {
			continue
		}
		parts = append(parts, label+": "+m.Content)
	}
	return strings.Join(parts, "\n\n")
}
