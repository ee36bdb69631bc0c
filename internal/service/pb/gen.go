// Package pb holds the generated protocol buffer types for the OrbitOps
// service. Regenerate after editing orbitops.proto:
//
//	protoc --go_out=. --go_opt=paths=source_relative \
//	       --go-grpc_out=. --go-grpc_opt=paths=source_relative \
//	       orbitops.proto
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative orbitops.proto
