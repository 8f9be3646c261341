/*
Oracle contract is a thin wrapper around a single external price feed.

The feed is any contract exposing `latestAnswer` and `decimals` methods. The
oracle forwards both calls and refuses to return a price when the feed is
unset, gone or reports a non-positive value, so the consumers never see a
zero price.

# Contract notifications

FeedUpdated notification. This notification is produced when the owner sets
a new price feed.

	FeedUpdated:
	  - name: feed
	    type: Hash160

OwnershipTransferred notification. This notification is produced when the
owner hands the contract over to another account.

	OwnershipTransferred:
	  - name: previousOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160
*/
package oracle
