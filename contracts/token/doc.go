/*
Token contract is a NEP-17 synthetic token whose supply is controlled by pool
contracts.

Only accounts registered by the owner with SetPool may mint and burn tokens,
the owner itself included. Holders transfer tokens with the usual NEP-17
Transfer method.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification. Mint produces
it with empty sender, Burn with empty receiver.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

PoolUpdated notification. This notification is produced when the owner
grants or revokes mint and burn rights.

	PoolUpdated:
	  - name: pool
	    type: Hash160
	  - name: enabled
	    type: Boolean

OwnershipTransferred notification. This notification is produced when the
owner hands the contract over to another account.

	OwnershipTransferred:
	  - name: previousOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160
*/
package token
