package wasm

import (
	"strconv"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/proto"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	chaintypes "github.com/QuVaultLabs/deployer-go/chain/types"
)

// CheckTx turns a non-zero result code into ErrTxFailed.
func CheckTx(res *sdk.TxResponse) error {
	if res.Code == 0 {
		return nil
	}
	return errors.Wrapf(chaintypes.ErrTxFailed, "tx %s failed with code %d (%s): %s", res.TxHash, res.Code, res.Codespace, res.RawLog)
}

// ParseStoreCode reads the code id from the tx msg responses, falling back to
// the store_code event.
func ParseStoreCode(res *sdk.TxResponse) (uint64, []byte, error) {
	var resp wasmtypes.MsgStoreCodeResponse
	if ok, err := unpackMsgResponse(res, &resp); err != nil {
		return 0, nil, err
	} else if ok && resp.CodeID != 0 {
		return resp.CodeID, resp.Checksum, nil
	}

	value, ok := findEventAttr(res, wasmtypes.EventTypeStoreCode, wasmtypes.AttributeKeyCodeID)
	if !ok {
		return 0, nil, errors.Wrapf(chaintypes.ErrResponse, "no code id in tx %s", res.TxHash)
	}

	codeID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, nil, errors.Wrapf(chaintypes.ErrResponse, "bad code id %q in tx %s", value, res.TxHash)
	}

	var checksum []byte
	if hexsum, ok := findEventAttr(res, wasmtypes.EventTypeStoreCode, wasmtypes.AttributeKeyChecksum); ok {
		checksum = ethcommon.FromHex(hexsum)
	}

	return codeID, checksum, nil
}

// ParseContractAddress reads the new contract address from the tx msg
// responses, falling back to the instantiate event.
func ParseContractAddress(res *sdk.TxResponse) (string, error) {
	var resp wasmtypes.MsgInstantiateContractResponse
	if ok, err := unpackMsgResponse(res, &resp); err != nil {
		return "", err
	} else if ok && resp.Address != "" {
		return resp.Address, nil
	}

	addr, ok := findEventAttr(res, wasmtypes.EventTypeInstantiate, wasmtypes.AttributeKeyContractAddr)
	if !ok || addr == "" {
		return "", errors.Wrapf(chaintypes.ErrResponse, "no contract address in tx %s", res.TxHash)
	}

	return addr, nil
}

// unpackMsgResponse decodes the first msg response of the type of out.
func unpackMsgResponse(res *sdk.TxResponse, out proto.Message) (bool, error) {
	if res.Data == "" {
		return false, nil
	}

	var msgData sdk.TxMsgData
	if err := proto.Unmarshal(ethcommon.Hex2Bytes(res.Data), &msgData); err != nil {
		return false, errors.Wrapf(chaintypes.ErrResponse, "decode tx data of %s: %v", res.TxHash, err)
	}

	typeURL := "/" + proto.MessageName(out)
	for _, msgAny := range msgData.MsgResponses {
		if msgAny == nil || msgAny.TypeUrl != typeURL {
			continue
		}
		if err := proto.Unmarshal(msgAny.Value, out); err != nil {
			return false, errors.Wrapf(chaintypes.ErrResponse, "decode %s: %v", typeURL, err)
		}
		return true, nil
	}

	return false, nil
}

func findEventAttr(res *sdk.TxResponse, eventType, key string) (string, bool) {
	for _, ev := range res.Events {
		if ev.Type != eventType {
			continue
		}
		for _, attr := range ev.Attributes {
			if attr.Key == key {
				return attr.Value, true
			}
		}
	}

	for _, msgLog := range res.Logs {
		for _, ev := range msgLog.Events {
			if ev.Type != eventType {
				continue
			}
			for _, attr := range ev.Attributes {
				if attr.Key == key {
					return attr.Value, true
				}
			}
		}
	}

	return "", false
}
