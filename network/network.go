package network

import (
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/unoparty/consts"
	"github.com/ratel-online/unoparty/render"
	"github.com/ratel-online/unoparty/service"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

// handle binds an authenticated connection to the human seat of table.
func handle(table *service.Table, rwc protocol.ReadWriteCloser) error {
	c := network.Wrapper(rwc)
	defer func() {
		err := c.Close()
		if err != nil {
			log.Error(err)
		}
	}()
	log.Info("new player connected! ")
	authInfo, err := loginAuth(c)
	if err != nil || authInfo.ID == 0 {
		_ = c.Write(protocol.ErrorPacket(err))
		return err
	}
	log.Infof("player auth accessed, %d:%s\n", authInfo.ID, authInfo.Name)

	session := newSession(table, c)
	id := table.Subscribe(session.push)
	defer table.Unsubscribe(id)

	for _, line := range table.Log() {
		_ = session.writeString(line)
	}
	_ = session.writeString(render.Help())
	_ = session.writeString(render.Screen(table.Snapshot(service.HumanSeat), service.HumanSeat))
	return session.listen()
}

// loginAuth waits for the client's auth info.
func loginAuth(c *network.Conn) (*model.AuthInfo, error) {
	authChan := make(chan *model.AuthInfo, 1)
	async.Async(func() {
		packet, err := c.Read()
		if err != nil {
			log.Error(err)
			return
		}
		authInfo := &model.AuthInfo{}
		err = packet.Unmarshal(authInfo)
		if err != nil {
			log.Error(err)
			return
		}
		authChan <- authInfo
	})
	select {
	case authInfo := <-authChan:
		return authInfo, nil
	case <-time.After(consts.AuthTimeout):
		return nil, consts.ErrorsAuthFail
	}
}
