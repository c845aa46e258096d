package abisig

// Function returns a function entry with the given inputs
func Function(name string, inputs ...ParameterType) InterfaceEntry {
	return InterfaceEntry{Kind: KindFunction, Name: name, Inputs: inputs}
}

// Event returns an event entry with the given inputs
func Event(name string, inputs ...ParameterType) InterfaceEntry {
	return InterfaceEntry{Kind: KindEvent, Name: name, Inputs: inputs}
}

// Error returns a custom error entry with the given inputs
func Error(name string, inputs ...ParameterType) InterfaceEntry {
	return InterfaceEntry{Kind: KindError, Name: name, Inputs: inputs}
}

// TupleOf returns a tuple type with the given components
func TupleOf(components ...ParameterType) Tuple {
	return Tuple{Components: components}
}
