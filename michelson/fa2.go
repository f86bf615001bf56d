package michelson

import (
	"github.com/parthshah1/tzc/registry"
)

// Transfer is one FA2 transfer of qty units of tokenID.
type Transfer struct {
	From    string
	To      string
	TokenID int64
	Amount  int64
}

// FA2Storage is the initial storage of the FA2 contract. Layout:
//
//	(pair (pair (pair %administrator %all_tokens) (pair %ledger (pair %metadata %operators)))
//	      (pair (pair %owner_by_token_id (pair %owners %paused))
//	            (pair %token_metadata (pair %token_info %total_supply))))
func FA2Storage(admin, metadataURI string) Node {
	metadata := Seq{Elt{Key: String(""), Value: Bytes(metadataURI)}}
	return Pair{
		Left: Pair{
			Left:  Pair{Left: String(admin), Right: Int(0)},
			Right: P(Seq{}, metadata, Seq{}),
		},
		Right: Pair{
			Left:  P(Seq{}, Seq{}, Bool(false)),
			Right: P(Seq{}, Seq{}, Seq{}),
		},
	}
}

// TokenInfo renders each attribute as Elt "<name>" <hex(value)> in template order.
func TokenInfo(attrs *registry.NFTTemplate) Seq {
	elts := make(Seq, 0, attrs.Len())
	for pair := attrs.Oldest(); pair != nil; pair = pair.Next() {
		elts = append(elts, Elt{Key: String(pair.Key), Value: Bytes(pair.Value)})
	}
	return elts
}

// MintParams is the argument of the mint entrypoint minting one token to owner.
func MintParams(owner string, attrs *registry.NFTTemplate, tokenID int64) Node {
	return Pair{
		Left:  Pair{Left: String(owner), Right: Int(1)},
		Right: Pair{Left: TokenInfo(attrs), Right: Int(tokenID)},
	}
}

// TransferArg is the argument of the transfer entrypoint. Transfers keep
// the caller's order; the batch is applied atomically in that order.
func TransferArg(transfers []Transfer) Node {
	batch := make(Seq, 0, len(transfers))
	for _, t := range transfers {
		batch = append(batch, Pair{
			Left: String(t.From),
			Right: Seq{Pair{
				Left:  String(t.To),
				Right: Pair{Left: Int(t.TokenID), Right: Int(t.Amount)},
			}},
		})
	}

	return batch
}
