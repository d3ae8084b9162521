package redis

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/cafebazaar/teambubbles/pkg/teambubbles"

	redisproto "github.com/secmask/go-redisproto"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/status"
)

type redisServer struct {
	listenPort int
	core       teambubbles.Service
	wg         sync.WaitGroup
	listener   net.Listener
}

// New returns a server speaking the Redis protocol. Besides PING and ECHO it
// answers TEAMS with one JSON document per team and RENDER with the chart.
func New(core teambubbles.Service, listenPort int) teambubbles.Server {
	return &redisServer{
		core:       core,
		listenPort: listenPort,
	}
}

func (s *redisServer) Start() error {
	var err error

	s.listener, err = net.Listen("tcp", fmt.Sprintf(":%d", s.listenPort))
	if err != nil {
		return err
	}

	started := make(chan struct{})
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		close(started)

		for {
			conn, err := s.listener.Accept()
			if err != nil {
				return
			}

			go s.handleConnection(conn)
		}
	}()
	<-started

	return nil
}

func (s *redisServer) Close() error {
	err := s.listener.Close()
	s.wg.Wait()
	return err
}

func (s *redisServer) handleConnection(conn net.Conn) {
	defer func() {
		if err := conn.Close(); err != nil {
			logrus.WithError(err).Info("unexpected error while closing connection")
		}
	}()

	parser := redisproto.NewParser(conn)
	writer := redisproto.NewWriter(bufio.NewWriter(conn))

	for {
		if err := s.connectionLoop(parser, writer); err != nil {
			if err != teambubbles.ErrClosed {
				logrus.WithError(err).Info("unexpected error while handling connection")
			}
			return
		}
	}
}

func (s *redisServer) connectionLoop(parser *redisproto.Parser, writer *redisproto.Writer) error {
	command, err := parser.ReadCommand()
	if err != nil {
		_, ok := err.(*redisproto.ProtocolError)
		if ok {
			if err := writer.WriteError(err.Error()); err != nil {
				return err
			}
			return writer.Flush()
		}

		return teambubbles.ErrClosed
	}

	return s.dispatchCommand(command, writer)
}

func (s *redisServer) dispatchCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	cmd := strings.ToUpper(string(command.Get(0)))
	var err error

	switch cmd {
	case "TEAMS":
		err = s.handleTeamsCommand(command, writer)

	case "RENDER":
		err = s.handleRenderCommand(command, writer)

	case "PING":
		err = s.handlePingCommand(command, writer)

	case "ECHO":
		err = s.handleEchoCommand(command, writer)

	default:
		err = writer.WriteError(fmt.Sprintf("command not supported: %v", cmd))
	}

	if err != nil {
		return err
	}

	if command.IsLast() {
		return writer.Flush()
	}

	return nil
}

func (s *redisServer) handleTeamsCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	if command.ArgCount() != 1 {
		return writer.WriteError("expected no arguments for TEAMS command")
	}

	response, err := s.core.Aggregates(context.Background(), &teambubbles.AggregatesRequest{})
	if err != nil {
		return writer.WriteError(errorMessage(err))
	}

	bulks := make([][]byte, 0, len(response.Aggregates))
	for _, aggregate := range response.Aggregates {
		data, err := json.Marshal(aggregate)
		if err != nil {
			return writer.WriteError(err.Error())
		}
		bulks = append(bulks, data)
	}

	return writer.WriteBulks(bulks...)
}

func (s *redisServer) handleRenderCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	if command.ArgCount() > 3 {
		return writer.WriteError("expected 1-3 arguments for RENDER command")
	}

	request := &teambubbles.RenderRequest{}
	if command.ArgCount() > 1 {
		request.Format = string(command.Get(1))
	}
	if command.ArgCount() > 2 {
		request.Locale = string(command.Get(2))
	}

	response, err := s.core.Render(context.Background(), request)
	if err != nil {
		return writer.WriteError(errorMessage(err))
	}

	return writer.WriteBulk(response.Data)
}

func (s *redisServer) handlePingCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	if command.ArgCount() > 2 {
		return writer.WriteError("expected 1-2 arguments for Ping command")
	}

	if command.ArgCount() == 1 {
		return writer.WriteSimpleString("PONG")
	}

	return writer.WriteBulk(command.Get(1))
}

func (s *redisServer) handleEchoCommand(command *redisproto.Command, writer *redisproto.Writer) error {
	if command.ArgCount() != 2 {
		return writer.WriteError("expected 2 arguments for Echo command")
	}

	return writer.WriteBulk(command.Get(1))
}

func errorMessage(err error) string {
	if st, ok := status.FromError(err); ok {
		return fmt.Sprintf("%v %v", strings.ToUpper(st.Code().String()), st.Message())
	}

	return err.Error()
}
