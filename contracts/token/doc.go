/*
Package token implements the payment token the Shares contract settles
trades in.

It is a NEP-17 compatible fungible token extended with an ERC-20 style
allowance surface: an account approves a spender (normally the Shares
contract) for some amount, and the spender pulls tokens with TransferFrom
when a trade is executed. The whole supply is minted to the owner account at
deploy time.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Approval notification. It is produced when an account sets an allowance for
a spender.

	Approval:
	  - name: account
	    type: Hash160
	  - name: spender
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package token

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'circulation' -> int
   total amount of tokens minted
 - 'o' -> interop.Hash160
   token owner the initial supply is minted to
 - b<account> -> int
   token balance of the account, record removed when emptied
 - a<account><spender> -> int
   remaining allowance given by account to spender, record removed when
   fully consumed
*/
