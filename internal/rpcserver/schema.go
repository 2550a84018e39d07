package rpcserver

import (
	_ "embed"
	"fmt"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
)

//go:embed schema.proto
var schemaSource string

const schemaFile = "schema.proto"

var serviceDescriptor *desc.ServiceDescriptor

func init() {
	parser := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{schemaFile: schemaSource}),
	}
	fds, err := parser.ParseFiles(schemaFile)
	if err != nil {
		panic(fmt.Sprintf("rpcserver: embedded schema failed to parse: %v", err))
	}
	sd := fds[0].FindService("exprlang.ExprService")
	if sd == nil {
		panic("rpcserver: ExprService not found in embedded schema")
	}
	serviceDescriptor = sd
}
