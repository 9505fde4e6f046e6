package multisig

// Marshaller is anything that can be represented in binary.
//
// Marshall may validate the data before serializing it and may return an
// error in such case.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent objects can be serialized to and deserialized from binary
// representation. All protobuf models implement this interface.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}
