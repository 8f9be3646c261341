/*
Vault contract turns GAS into synthetic tokens and back.

A GAS transfer to the vault is a deposit. The vault keeps the GAS as
collateral, records it in the depositor's position and mints

	minted = amount * price * 10000 / (ratio * 10^decimals)

synthetic tokens, where price and decimals come from the oracle and ratio is
the collateral ratio in basis points. Withdraw burns tokens and pays back

	released = amount * ratio * 10^decimals / (price * 10000)

GAS at the price of the moment, so the user carries the price risk.

Deposits and withdrawals cannot be nested: the vault rejects an entry while
another one is in progress.

# Contract notifications

Deposit notification. This notification is produced when GAS is deposited.

	Deposit:
	  - name: user
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: minted
	    type: Integer
	  - name: price
	    type: Integer

Withdraw notification. This notification is produced when tokens are
redeemed.

	Withdraw:
	  - name: user
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: released
	    type: Integer
	  - name: price
	    type: Integer
*/
package vault
