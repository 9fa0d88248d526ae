package network

import (
	"strings"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/unoparty/render"
	"github.com/ratel-online/unoparty/service"
)

// session relays one connection's text commands to the table.
type session struct {
	table *service.Table
	conn  *network.Conn
}

func newSession(table *service.Table, conn *network.Conn) *session {
	return &session{table: table, conn: conn}
}

func (s *session) writeString(data string) error {
	return s.conn.Write(protocol.Packet{
		Body: []byte(data),
	})
}

func (s *session) writeError(err error) error {
	return s.writeString(err.Error() + "\n")
}

func (s *session) push(update service.Update) {
	if err := s.writeString(strings.Join(update.Lines, "") + render.Screen(update.State, service.HumanSeat)); err != nil {
		log.Error(err)
	}
}

func (s *session) listen() error {
	for {
		packet, err := s.conn.Read()
		if err != nil {
			log.Error(err)
			return err
		}
		if err = s.dispatch(packet.String()); err != nil {
			_ = s.writeError(err)
		}
	}
}

func (s *session) dispatch(line string) error {
	command, err := service.ParseCommand(line)
	if err != nil {
		return err
	}
	if command.Kind == service.CommandHelp {
		return s.writeString(render.Help())
	}
	return s.table.Execute(command)
}
