package etypes

// ValueVariant is the recursive Value type: Null | Number | String |
// Boolean | Color | Object | Vector<Value>. It is built once via the
// two-phase constructor because the Vector member must reference the
// variant itself.
var ValueVariant = NewRecursiveVariant("Value", func(self *Variant) []Type {
	return []Type{
		Null,
		Number,
		String,
		Boolean,
		Color,
		Object,
		Vector{Item: self},
	}
})

// ValueType is the Type value expressions use for "any style value".
var ValueType Type = ValueVariant
