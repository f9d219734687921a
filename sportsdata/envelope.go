package sportsdata

// unwrap returns the payload sequence of a list-bearing result. The service
// frames every list in an ArrayOfX element whose first field group is the
// list itself, so the payload is the leading run of children sharing the
// first child's name. Order and identity are preserved.
func unwrap(envelope *Record) []*Record {
	if envelope == nil || len(envelope.Children) == 0 {
		return []*Record{}
	}
	name := envelope.Children[0].Name
	items := make([]*Record, 0, len(envelope.Children))
	for _, c := range envelope.Children {
		if c.Name != name {
			break
		}
		items = append(items, c)
	}
	return items
}

// isNoData reports whether a result is the empty "no data" sentinel.
func isNoData(result *Record) bool {
	return result.IsEmpty()
}
