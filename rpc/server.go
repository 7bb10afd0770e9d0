package rpc

import (
	"image-cms/rpc/imagepb"
	"image-cms/services"

	"google.golang.org/grpc"
)

// NewServer builds the gRPC server with the image servicer registered.
// Stream workers are capped so each call runs on a small fixed pool.
func NewServer(imageService services.ImageService) *grpc.Server {
	server := grpc.NewServer(grpc.NumStreamWorkers(10))
	imagepb.RegisterImageServiceServer(server, NewImageServicer(imageService))
	return server
}
