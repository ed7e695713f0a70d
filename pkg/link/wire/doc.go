// Package wire encodes link messages into frames.
//
// A frame is laid out as
//
//	magic(0xFE) len seq sysid msgid payload[len] crc_lo crc_hi
//
// where the CRC covers everything from len to the end of the payload and
// the payload is the protobuf encoding of the message. Byte streams (serial
// ports, TCP) are resynchronized by scanning for the magic byte; message
// oriented transports carry exactly one frame per packet.
package wire
