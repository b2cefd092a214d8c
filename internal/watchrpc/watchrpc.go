// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package watchrpc describes the notes.v1.NoteWatch gRPC service shared by
// the server handler and the client adapter.
//
// Messages are the JSON structs from the models package, carried by a JSON
// codec, so no generated protobuf code is involved. Both methods are server
// streams: the client sends one request and receives a frame per snapshot.
package watchrpc

import (
	"encoding/json"

	"github.com/MKhiriev/go-voice-notes/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

const (
	ServiceName = "notes.v1.NoteWatch"

	FullMethodWatchUserNotes = "/" + ServiceName + "/WatchUserNotes"
	FullMethodWatchNote      = "/" + ServiceName + "/WatchNote"

	// AuthorizationKey is the metadata key carrying "Bearer <token>".
	AuthorizationKey = "authorization"
)

// NoteWatchServer is implemented by the server side handler.
type NoteWatchServer interface {
	WatchUserNotes(req *models.WatchUserNotesRequest, stream grpc.ServerStream) error
	WatchNote(req *models.WatchNoteRequest, stream grpc.ServerStream) error
}

// ServiceDesc registers a [NoteWatchServer] on a grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*NoteWatchServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchUserNotes",
			Handler:       watchUserNotesHandler,
			ServerStreams: true,
		},
		{
			StreamName:    "WatchNote",
			Handler:       watchNoteHandler,
			ServerStreams: true,
		},
	},
	Metadata: "notes/v1/watch",
}

// WatchUserNotesStream and WatchNoteStream describe the client side of the
// two streams.
var (
	WatchUserNotesStream = &ServiceDesc.Streams[0]
	WatchNoteStream      = &ServiceDesc.Streams[1]
)

func watchUserNotesHandler(srv any, stream grpc.ServerStream) error {
	req := new(models.WatchUserNotesRequest)
	if err := stream.RecvMsg(req); err != nil {
		return err
	}
	return srv.(NoteWatchServer).WatchUserNotes(req, stream)
}

func watchNoteHandler(srv any, stream grpc.ServerStream) error {
	req := new(models.WatchNoteRequest)
	if err := stream.RecvMsg(req); err != nil {
		return err
	}
	return srv.(NoteWatchServer).WatchNote(req, stream)
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return "json" }

// Codec returns the JSON codec both ends must force.
func Codec() encoding.Codec {
	return jsonCodec{}
}
