package sexy

import "fmt"

// Match checks actual against pattern. Atoms match when their type and text
// are equal; lists match item by item. An ellipsis in a pattern list matches
// any run of items, including none, and an ellipsis in place of a list
// matches any node. The returned error describes the first mismatch.
func Match(pattern, actual *Node) error {
	return match(pattern, actual, "root")
}

func match(pattern, actual *Node, path string) error {
	if pattern.Type == NodeEllipsis {
		return nil
	}
	if actual == nil {
		return fmt.Errorf("at %s: expected %s, got nothing", path, pattern)
	}
	if pattern.Type != actual.Type {
		return fmt.Errorf("at %s: expected %s %s, got %s %s", path, pattern.Type, pattern, actual.Type, actual)
	}
	if pattern.IsAtom() {
		if pattern.Text != actual.Text {
			return fmt.Errorf("at %s: expected %s, got %s", path, pattern, actual)
		}
		return nil
	}
	return matchItems(pattern.Items, actual.Items, path, 0)
}

func matchItems(patterns, actuals []*Node, path string, offset int) error {
	if len(patterns) == 0 {
		if len(actuals) != 0 {
			return fmt.Errorf("at %s[%d]: unexpected %s", path, offset, actuals[0])
		}
		return nil
	}

	if patterns[0].Type == NodeEllipsis {
		var err error
		for skip := 0; skip <= len(actuals); skip++ {
			err = matchItems(patterns[1:], actuals[skip:], path, offset+skip)
			if err == nil {
				return nil
			}
		}
		return err
	}

	if len(actuals) == 0 {
		return fmt.Errorf("at %s[%d]: missing %s", path, offset, patterns[0])
	}
	if err := match(patterns[0], actuals[0], fmt.Sprintf("%s[%d]", path, offset)); err != nil {
		return err
	}
	return matchItems(patterns[1:], actuals[1:], path, offset+1)
}
