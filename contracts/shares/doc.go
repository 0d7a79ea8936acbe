/*
Package shares implements the Shares contract, a per-subject bonding curve
market for fungible subject shares.

Any account (a subject) gets a tradable pool of shares the moment its first
share is bought. The price of a share unit grows with the square of its rank
on the curve, so buying pushes the price up and selling back down along the
same curve. Trades are settled in an external NEP-17 payment token configured
by the contract owner; buys pull tokens through the allowance the trader gave
to this contract, sells push the payout back to the trader. Every trade takes
a protocol fee split between three configured destination accounts and a
subject fee paid to the traded subject.

A pool that has ever been seeded always keeps at least one outstanding share:
selling the final one fails. The first share of a pool can be bought only by
the subject itself, so a pool cannot be claimed by a stranger before its
subject enters the market.

# Contract notifications

Trade notification. It is produced on every successful buy or sell.

	Trade:
	  - name: subject
	    type: Hash160
	  - name: trader
	    type: Hash160
	  - name: isBuy
	    type: Boolean
	  - name: amount
	    type: Integer
	  - name: basePrice
	    type: Integer
	  - name: protocolFee
	    type: Integer
	  - name: subjectFee
	    type: Integer
	  - name: newSupply
	    type: Integer

OwnershipTransferred notification. It is produced when the owner role is
handed over to another account.

	OwnershipTransferred:
	  - name: previousOwner
	    type: Hash160
	  - name: newOwner
	    type: Hash160
*/
package shares

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'o' -> interop.Hash160
   contract owner
 - 't' -> interop.Hash160
   payment token contract
 - 'd' -> std.Serialize(FeeDestinations)
   three protocol fee destination accounts
 - 'p' -> int
   protocol fee percent, explicit zero by default
 - 'q' -> int
   subject fee percent, explicit zero by default
 - s<subject> -> int
   outstanding share supply of the subject's pool
 - b<subject><holder> -> int
   subject's shares held by holder, record removed when emptied

# Accounting
The sum of all balance records of a subject always equals its supply record:
both are changed together and only within a trade transaction.
*/
