package main

import (
	"fmt"
	"strconv"
	"strings"

	"mvcc-go/redis"

	"github.com/tidwall/redcon"
)

func newWrongNumberArgsError(cmd string) error {
	return fmt.Errorf("Err wrong number of arguments for '%s'", cmd)
}

type cmdHandler func(cli *MvccClient, args [][]byte) (interface{}, error)

var supportedCommands = map[string]cmdHandler{
	"begin":    begin,
	"put":      put,
	"get":      get,
	"commit":   commit,
	"rollback": rollback,
	"vacuum":   vacuum,
	"set":      set,
	"keys":     keys,
	"info":     info,
}

type MvccClient struct {
	sessionID string
	store     *redis.TxnStore
}

func execClientCmd(conn redcon.Conn, cmd redcon.Command) {
	command := strings.ToLower(string(cmd.Args[0]))

	switch command {
	case "quit":
		conn.Close()
	case "ping":
		conn.WriteString("pong")
	default:
		cmdHandler, ok := supportedCommands[command]
		if !ok {
			conn.WriteError(fmt.Sprintf("unsupport command %v", command))
			return
		}

		client, _ := conn.Context().(*MvccClient)
		res, err := cmdHandler(client, cmd.Args[1:])
		if err != nil {
			conn.WriteError(err.Error())
			return
		}

		if res == nil {
			conn.WriteNull()
			return
		}

		conn.WriteAny(res)
	}
}

func parseTid(arg []byte) (uint64, error) {
	tid, err := strconv.ParseUint(string(arg), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("Err invalid transaction id '%s'", arg)
	}
	return tid, nil
}

func begin(cli *MvccClient, args [][]byte) (interface{}, error) {
	if len(args) != 0 {
		return nil, newWrongNumberArgsError("begin")
	}

	tid := cli.store.Begin()
	return redcon.SimpleInt(tid), nil
}

func put(cli *MvccClient, args [][]byte) (interface{}, error) {
	if len(args) != 3 {
		return nil, newWrongNumberArgsError("put")
	}

	tid, err := parseTid(args[0])
	if err != nil {
		return nil, err
	}

	if err := cli.store.Put(tid, args[1], args[2]); err != nil {
		return nil, err
	}

	return redcon.SimpleString("OK"), nil
}

// get tid key reads at the snapshot of tid, get key reads at a fresh one
func get(cli *MvccClient, args [][]byte) (interface{}, error) {
	switch len(args) {
	case 1:
		value, err := cli.store.GetLatest(args[0])
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, nil
		}
		return value, nil
	case 2:
		tid, err := parseTid(args[0])
		if err != nil {
			return nil, err
		}
		value, err := cli.store.Get(tid, args[1])
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, nil
		}
		return value, nil
	}

	return nil, newWrongNumberArgsError("get")
}

func commit(cli *MvccClient, args [][]byte) (interface{}, error) {
	if len(args) != 1 {
		return nil, newWrongNumberArgsError("commit")
	}

	tid, err := parseTid(args[0])
	if err != nil {
		return nil, err
	}

	var ok int64 = 0
	if cli.store.Commit(tid) {
		ok = 1
	}
	return redcon.SimpleInt(ok), nil
}

func rollback(cli *MvccClient, args [][]byte) (interface{}, error) {
	if len(args) != 1 {
		return nil, newWrongNumberArgsError("rollback")
	}

	tid, err := parseTid(args[0])
	if err != nil {
		return nil, err
	}

	cli.store.Rollback(tid)
	return redcon.SimpleString("OK"), nil
}

func vacuum(cli *MvccClient, args [][]byte) (interface{}, error) {
	if len(args) != 0 {
		return nil, newWrongNumberArgsError("vacuum")
	}

	cli.store.Vacuum()
	return redcon.SimpleString("OK"), nil
}

func set(cli *MvccClient, args [][]byte) (interface{}, error) {
	if len(args) != 2 {
		return nil, newWrongNumberArgsError("set")
	}

	if err := cli.store.Set(args[0], args[1]); err != nil {
		return nil, err
	}
	return redcon.SimpleString("OK"), nil
}

func keys(cli *MvccClient, args [][]byte) (interface{}, error) {
	if len(args) != 0 {
		return nil, newWrongNumberArgsError("keys")
	}

	return cli.store.Keys(), nil
}

func info(cli *MvccClient, args [][]byte) (interface{}, error) {
	if len(args) != 0 {
		return nil, newWrongNumberArgsError("info")
	}

	stat := cli.store.Stat()
	out := fmt.Sprintf("keys:%d\r\nversions:%d\r\nactive_txns:%d\r\nlast_tid:%d\r\nlast_commit_ts:%d",
		stat.KeyNum, stat.VersionNum, stat.ActiveTxnNum, stat.LastTid, stat.LastCommitTs)
	return out, nil
}
