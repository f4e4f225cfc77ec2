package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the tree rooted at n to w.
func FprintJSON(w io.Writer, n *Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(n))
}

func toJSON(n *Node) interface{} {
	if n == nil {
		return nil
	}

	switch n.Op {
	case Number:
		return map[string]interface{}{
			"type":  "Number",
			"value": n.Int,
		}

	case Float:
		return map[string]interface{}{
			"type":  "Float",
			"value": n.Float,
		}

	case Ident:
		return map[string]interface{}{
			"type": "Ident",
			"name": n.Name,
		}
	}

	m := map[string]interface{}{
		"type": n.Op.String(),
		"left": toJSON(n.Left),
	}
	if n.Right != nil {
		m["right"] = toJSON(n.Right)
	}
	return m
}
