package manifest

// replacedKeys are always taken from the freshly computed manifest.
var replacedKeys = map[string]bool{
	"dependencies":    true,
	"devDependencies": true,
}

// Merge combines a freshly computed manifest with the one already on disk.
// Top-level values the user already set win over fresh ones, except the
// dependency maps which fresh always replaces when it has them. Keys keep
// fresh order; keys only the existing manifest has follow in their order.
// The merge is shallow.
func Merge(fresh, existing Object) Object {
	merged := make(Object, 0, len(fresh)+len(existing))

	for _, m := range fresh {
		value := m.Value
		if !replacedKeys[m.Key] {
			if v, ok := existing.Get(m.Key); ok {
				value = v
			}
		}
		merged = append(merged, Member{Key: m.Key, Value: value})
	}

	for _, m := range existing {
		if !fresh.Has(m.Key) {
			merged = append(merged, m)
		}
	}
	return merged
}
